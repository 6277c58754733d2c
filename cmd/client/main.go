package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/amorags/notepad/internal/adapter"
	"github.com/amorags/notepad/internal/logger"
	"github.com/amorags/notepad/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `Usage: notepad-client [flags] <command>

Commands:
  signup          register a new account (-email, -password)
  login           obtain an access token (-email, -password)
  delete-account  delete the account and all notes (-token)
  list            list notes (-token, -skip, -limit)
  get             fetch a note (-token, -id)
  create          create a note (-token, -name, -content)
  update          replace a note (-token, -id, -name, -content)
  delete          delete a note (-token, -id)
  word-count      count words in a note (-token, -id)
`

func main() {
	address := flag.String("a", envOr("ADAPTER_ADDRESS", "localhost:8080"), "server address")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	token := flag.String("token", "", "bearer token from a previous login")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	noteID := flag.Int64("id", 0, "note id")
	name := flag.String("name", "", "note name")
	content := flag.String("content", "", "note content")
	skip := flag.Int("skip", 0, "number of notes to skip")
	limit := flag.Int("limit", 100, "maximum number of notes to return")
	version := flag.Bool("version", false, "print build info and exit")

	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		printBuildInfo()
		return
	}

	log := logger.NewLogger("notepad-client")

	command := flag.Arg(0)
	if command == "" {
		flag.Usage()
		os.Exit(2)
	}

	srv, err := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: *address,
		Timeout: *timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}
	srv.SetToken(*token)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	creds := models.Credentials{Email: *email, Password: *password}
	payload := models.NotePayload{Name: *name, Content: *content}

	var result any
	switch command {
	case "signup":
		result, err = srv.Signup(ctx, creds)
	case "login":
		result, err = srv.Login(ctx, creds)
	case "delete-account":
		err = srv.DeleteAccount(ctx)
	case "list":
		result, err = srv.ListNotes(ctx, *skip, *limit)
	case "get":
		result, err = srv.GetNote(ctx, *noteID)
	case "create":
		result, err = srv.CreateNote(ctx, payload)
	case "update":
		result, err = srv.UpdateNote(ctx, *noteID, payload)
	case "delete":
		err = srv.DeleteNote(ctx, *noteID)
	case "word-count":
		result, err = srv.WordCount(ctx, *noteID)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("command failed")
	}

	if result != nil {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("error encoding response")
		}
		fmt.Println(string(out))
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
