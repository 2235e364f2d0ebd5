package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/hetulpatel/texttosql/internal/bootstrap"
	"github.com/hetulpatel/texttosql/internal/config"
	"github.com/hetulpatel/texttosql/internal/logging"
	"github.com/hetulpatel/texttosql/internal/models"
	"github.com/hetulpatel/texttosql/internal/shell"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("config: %v", err)
	}
	logging.InitFromEnv()
	svc, cleanup, err := bootstrap.Service(cfg)
	if err != nil {
		logging.Fatalf("init: %v", err)
	}
	defer cleanup()

	fmt.Printf("Text to SQL ready (model: %s, database: %s)\n", cfg.LLM.Model, cfg.SQLite.Path)
	fmt.Println("Type a question and press enter. Type 'exit' or 'quit' to leave.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println("\nGoodbye.")
			return
		}
		question := scanner.Text()
		trimmed := strings.TrimSpace(question)
		if strings.EqualFold(trimmed, "exit") || strings.EqualFold(trimmed, "quit") {
			fmt.Println("Goodbye.")
			return
		}
		if ctx.Err() != nil {
			return
		}
		printOutcome(svc.Ask(ctx, question))
	}
}

func printOutcome(out shell.Outcome) {
	if out.SQL != "" {
		fmt.Printf("[sql]\n%s\n", out.SQL)
	}
	switch out.Status {
	case models.QueryStatusSuccess:
		fmt.Println("[results]")
		for _, row := range shell.FormatRows(out.Rows) {
			fmt.Println(row)
		}
	default:
		fmt.Println(out.Message)
	}
}
