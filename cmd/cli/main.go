// A local REPL for exercising the router without a gateway connection.
// Every stdin line is treated as a direct message from one fake user.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/keshon/abg-tutor/internal/ai"
	"github.com/keshon/abg-tutor/internal/config"
	"github.com/keshon/abg-tutor/internal/mathsolver"
	"github.com/keshon/abg-tutor/internal/mind"
	"github.com/keshon/abg-tutor/internal/sentiment"
)

func main() {
	cfg := config.New()

	store := mind.NewStore()
	responder := mind.NewResponder(ai.DefaultProvider(cfg))
	router := mind.NewRouter(store, responder, sentiment.NewLexiconScorer(), mathsolver.NewEvaluator())

	fmt.Println("abg tutor cli. type a message, ctrl-d to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		out := router.Handle(context.Background(), mind.Inbound{
			SenderID: "cli-user",
			Text:     text,
			IsDM:     true,
		})
		if out == nil {
			continue
		}
		if out.Reaction != "" {
			fmt.Printf("[reaction] %s\n", out.Reaction)
		}
		if out.Text != "" {
			fmt.Println(out.Text)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("[ERR] read stdin: %v", err)
	}
}
