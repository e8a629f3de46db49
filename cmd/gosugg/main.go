// Command gosugg suggests translations for a corpus of exercise strings.
//
// The corpus is a JSON array of {"english": ..., "translated": ...} objects;
// entries with an empty translation receive suggestions derived from the
// translated entries.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lingoreef/gosugg"
	"github.com/lingoreef/gosugg/cache"
	"github.com/lingoreef/gosugg/provider"
	"github.com/lingoreef/gosugg/source"
)

type corpusEntry struct {
	English    string `json:"english"`
	Translated string `json:"translated,omitempty"`
}

type result struct {
	English    string `json:"english"`
	Suggestion string `json:"suggestion,omitempty"`
	Ok         bool   `json:"ok"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gosugg", flag.ContinueOnError)
	fs.SetOutput(stderr)

	locale := fs.String("locale", "", "Target locale (e.g., fr, pt-pt, cs)")
	output := fs.String("o", "", "Output file (default: stdout)")
	cacheFile := fs.String("cache", "", "Suggestion cache file to import before and export after the run")
	workers := fs.Int("workers", 1, "Number of parallel suggestion workers")
	htmlMode := fs.Bool("html", false, "Read two HTML documents (english, translated) instead of a JSON corpus")
	useFallback := fs.Bool("fallback", false, "Send unanswered items to OpenAI (requires OPENAI_API_KEY)")
	model := fs.String("model", "gpt-4o-mini", "OpenAI model for the fallback provider")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *showVersion {
		fmt.Fprintln(stdout, gosugg.Name, gosugg.FullVersion())
		return nil
	}
	if *locale == "" {
		return fmt.Errorf("-locale is required")
	}
	var corpus []corpusEntry
	var err error
	if *htmlMode {
		if fs.NArg() != 2 {
			return fmt.Errorf("usage: gosugg -locale <locale> -html [flags] <english.html> <translated.html>")
		}
		corpus, err = readHTMLCorpus(fs.Arg(0), fs.Arg(1))
	} else {
		if fs.NArg() != 1 {
			return fmt.Errorf("usage: gosugg -locale <locale> [flags] <corpus.json>")
		}
		corpus, err = readCorpus(fs.Arg(0))
	}
	if err != nil {
		return err
	}

	memCache := cache.NewMemoryCache(24 * time.Hour)
	if *cacheFile != "" {
		if _, err := os.Stat(*cacheFile); err == nil {
			if _, err := cache.ImportFromFile(memCache, *cacheFile); err != nil {
				return fmt.Errorf("importing cache: %w", err)
			}
		}
	}

	opts := []gosugg.Option[corpusEntry]{
		gosugg.WithCache[corpusEntry](memCache),
	}
	if *useFallback {
		p := provider.NewOpenAIProvider(provider.OpenAIConfig{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  *model,
		})
		wrapped := gosugg.NewRetryableFallback(
			gosugg.NewRateLimitedFallback(p, gosugg.RateLimitConfig{RequestsPerMinute: 60}),
			gosugg.DefaultRetryConfig(),
		)
		opts = append(opts, gosugg.WithFallback[corpusEntry](wrapped))
	}

	engine := gosugg.NewEngine(corpus,
		func(e corpusEntry) string { return e.English },
		func(e corpusEntry) string { return e.Translated },
		*locale, opts...)

	var pending []corpusEntry
	for _, e := range corpus {
		if e.Translated == "" {
			pending = append(pending, e)
		}
	}

	var suggestions []gosugg.Suggestion[corpusEntry]
	if *useFallback {
		suggestions, err = engine.SuggestWithFallback(context.Background(), pending)
		if err != nil {
			fmt.Fprintf(stderr, "fallback: %v\n", err)
		}
	} else {
		suggestions = engine.SuggestParallel(pending, *workers)
	}

	results := make([]result, len(suggestions))
	for i, s := range suggestions {
		results[i] = result{English: s.Item.English, Suggestion: s.Text, Ok: s.Ok}
	}

	out := stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}

	if *cacheFile != "" {
		if err := cache.ExportToFile(memCache, *cacheFile, map[string]string{
			"locale": *locale,
		}); err != nil {
			return fmt.Errorf("exporting cache: %w", err)
		}
	}
	return nil
}

func readHTMLCorpus(englishPath, translatedPath string) ([]corpusEntry, error) {
	englishHTML, err := os.ReadFile(englishPath)
	if err != nil {
		return nil, fmt.Errorf("reading english document: %w", err)
	}
	translatedHTML, err := os.ReadFile(translatedPath)
	if err != nil {
		return nil, fmt.Errorf("reading translated document: %w", err)
	}

	items, err := source.ExtractPair(string(englishHTML), string(translatedHTML))
	if err != nil {
		return nil, err
	}
	corpus := make([]corpusEntry, len(items))
	for i, it := range items {
		corpus[i] = corpusEntry{English: it.English, Translated: it.Translated}
	}
	return corpus, nil
}

func readCorpus(path string) ([]corpusEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()

	var corpus []corpusEntry
	if err := json.NewDecoder(f).Decode(&corpus); err != nil {
		return nil, fmt.Errorf("decoding corpus: %w", err)
	}
	return corpus, nil
}
