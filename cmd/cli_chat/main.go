package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"car-shop-relay/internal/config"
	"car-shop-relay/internal/domain"
	"car-shop-relay/internal/llm"
	"car-shop-relay/internal/persona"
	"car-shop-relay/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	personaName := flag.String("persona", cfg.Persona, "persona incluida ("+strings.Join(persona.Names(), ", ")+")")
	flag.Parse()

	logger := zap.NewExample()
	defer logger.Sync()

	personaSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "persona" {
			personaSet = true
		}
	})

	assistant, err := resolvePersona(cfg, *personaName, personaSet)
	if err != nil {
		log.Fatal(err)
	}

	llmClient := llm.NewHTTPClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, logger)
	relaySvc := service.NewRelayService(llmClient, cfg.OpenAIAPIKey, assistant, cfg.UpstreamTimeout, logger)

	active := relaySvc.Persona()
	fmt.Printf("===== Car Shop Assistant (%s, %s) =====\n", active.Name, active.Model)
	fmt.Println("Escribe un mensaje, /exit para salir.")

	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "/exit" {
			return
		}

		resp, err := relaySvc.Reply(ctx, domain.ChatRequest{Message: line})
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		fmt.Println(resp.Response)
	}
}

// resolvePersona da prioridad a -persona cuando se pasa explícitamente;
// si no, PERSONA_FILE gana sobre ASSISTANT_PERSONA como en el servidor.
func resolvePersona(cfg *config.Config, name string, explicit bool) (persona.Persona, error) {
	file := cfg.PersonaFile
	if explicit && file != "" {
		log.Printf("-persona=%s ignora PERSONA_FILE=%s", name, file)
		file = ""
	}
	return persona.Resolve(name, file, cfg.OpenAIModel)
}
