// Command process runs a single message through classification, extraction
// and the record pipeline without persisting anything. Useful for checking
// what the bot would do with a given text.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jfmartinez/expensebot/internal/extractor"
	"github.com/jfmartinez/expensebot/internal/logger"
	"github.com/jfmartinez/expensebot/internal/pipeline"
	"github.com/jfmartinez/expensebot/internal/record"
)

func main() {
	log := logger.New()

	variant := flag.String("fields", "gastos", "field-set variant")
	tz := flag.String("tz", "America/Bogota", "time zone for date/time defaults")
	model := flag.String("model", "gemini-2.5-flash", "Gemini model name")
	flag.Parse()

	text := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if text == "" {
		fmt.Fprintln(os.Stderr, "usage: process [flags] <message text>")
		os.Exit(1)
	}

	fields, ok := record.Variant(*variant)
	if !ok {
		log.Fatal().Str("field_set", *variant).Msg("Unknown field-set variant")
	}
	loc, err := time.LoadLocation(*tz)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load time zone")
	}

	ctx := context.Background()
	ext, err := extractor.NewGemini(ctx, *model)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create extractor")
	}

	intent, err := ext.Classify(ctx, text)
	if err != nil {
		log.Fatal().Err(err).Msg("Classification failed")
	}
	if intent == nil {
		log.Fatal().Msg("Message could not be classified")
	}
	log.Info().
		Str("kind", string(intent.Kind)).
		Str("detalle", intent.Detail).
		Str("valor", intent.Amount.String()).
		Msg("Classified")

	if intent.Kind != extractor.KindExpense {
		return
	}

	raw, err := ext.ExtractExpense(ctx, text)
	if err != nil {
		log.Fatal().Err(err).Msg("Extraction failed")
	}

	rec, err := pipeline.NewProcessor(fields, loc).Process(raw)
	if err != nil {
		if prompt := pipeline.UserPrompt(err); prompt != "" {
			fmt.Println(prompt)
			return
		}
		log.Fatal().Err(err).Msg("Pipeline failed")
	}

	out := make(map[string]any, len(fields.Fields))
	row := rec.Row(fields)
	for i, name := range fields.Fields {
		out[name] = row[i]
	}
	enc, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render record")
	}
	fmt.Println(string(enc))
}
