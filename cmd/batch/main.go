package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/answersheet/gradebot/internal/batch"
	"github.com/answersheet/gradebot/internal/setup"
)

type outputRecord struct {
	EventID string `json:"event_id"`
	Score   int    `json:"score"`
	Reason  string `json:"reason"`
	Error   string `json:"error,omitempty"`
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	input := flag.String("input", "", "Input JSONL file of answers, or - for stdin")
	output := flag.String("output", "", "Output JSONL file, defaults to stdout")
	continueOnError := flag.Bool("continue-on-error", true, "Continue on malformed input lines")
	flag.Parse()

	if *input == "" {
		log.Fatal().Msg("required flag -input not provided")
	}

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := setup.LoadConfig()
	deps, err := setup.Wire(ctx, cfg, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	// Open input file
	var inputFile io.Reader
	if *input == "-" {
		inputFile = os.Stdin
		log.Info().Msg("Reading from stdin")
	} else {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatal().Err(err).Str("file", *input).Msg("Failed to open input file")
		}
		defer f.Close()
		inputFile = f
		log.Info().Str("file", *input).Msg("Reading input file")
	}

	// Open output file
	var outputFile io.Writer
	if *output == "" {
		outputFile = os.Stdout
		log.Info().Msg("Writing to stdout")
	} else {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal().Err(err).Str("file", *output).Msg("Failed to open output file")
		}
		defer f.Close()
		outputFile = f
		log.Info().Str("file", *output).Msg("Writing output file")
	}

	reader := batch.NewReader(inputFile, deps.Logger)
	encoder := json.NewEncoder(outputFile)

	graded, failed := 0, 0
	for record := range reader.ReadAll(ctx) {
		if record.Error != nil {
			failed++
			log.Error().Err(record.Error).Int("line", record.Line).Msg("Skipping malformed input line")
			if !*continueOnError {
				log.Fatal().Msg("Aborting on first error")
			}
			continue
		}

		result := deps.Pipeline.GradeText(ctx, record.Request.EventID, record.Request.AnswerText)
		out := outputRecord{
			EventID: record.Request.EventID,
			Score:   result.Score,
			Reason:  result.Reason,
		}
		if err := encoder.Encode(out); err != nil {
			log.Fatal().Err(err).Msg("Failed to write output record")
		}
		graded++
	}

	log.Info().Int("graded", graded).Int("failed", failed).Msg("Batch grading complete")
}
