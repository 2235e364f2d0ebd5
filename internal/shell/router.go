package shell

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hetulpatel/texttosql/internal/logging"
	"github.com/hetulpatel/texttosql/internal/models"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html").
	Funcs(template.FuncMap{"formatRow": FormatRow}).
	ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	Question string
	Outcome  *Outcome
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Status  models.QueryStatus `json:"status"`
	Message string             `json:"message"`
	SQL     string             `json:"sql,omitempty"`
	Stage   string             `json:"stage,omitempty"`
	Columns []string           `json:"columns,omitempty"`
	Rows    []string           `json:"rows"`
	Cached  bool               `json:"cached"`
}

// NewRouter serves the form page, a JSON variant of the same flow, health and metrics.
func NewRouter(svc *Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.SetHTMLTemplate(pageTemplate)

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", pageData{})
	})
	r.POST("/", func(c *gin.Context) {
		question := c.PostForm("question")
		out := svc.Ask(c.Request.Context(), question)
		c.HTML(http.StatusOK, "index.html", pageData{Question: question, Outcome: &out})
	})
	r.POST("/api/ask", func(c *gin.Context) {
		var req askRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": models.QueryStatusError, "message": "invalid request body"})
			return
		}
		out := svc.Ask(c.Request.Context(), req.Question)
		c.JSON(statusCode(out), askResponse{
			Status:  out.Status,
			Message: out.Message,
			SQL:     out.SQL,
			Stage:   out.Stage,
			Columns: out.Columns,
			Rows:    FormatRows(out.Rows),
			Cached:  out.Cached,
		})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

func statusCode(out Outcome) int {
	switch out.Status {
	case models.QueryStatusWarning:
		return http.StatusBadRequest
	case models.QueryStatusError:
		if out.Stage == StageTranslate {
			return http.StatusBadGateway
		}
		return http.StatusUnprocessableEntity
	default:
		return http.StatusOK
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logging.Debugf("[shell] %s %s status=%d took=%s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(started))
	}
}
