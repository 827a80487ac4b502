// Command flume invokes an OpenAI-compatible inference endpoint and
// streams the response to the terminal with a live tokens-per-second
// readout.
//
// Usage:
//
//	FLUME_API_KEY=sk-... flume [flags] <prompt>
//	echo "prompt" | flume [flags]
//
// Flags:
//
//	-base-url string     Endpoint base URL (default: the OpenAI API)
//	-model string        Model ID (default: endpoint default)
//	-system string       System prompt
//	-max-tokens int      Maximum tokens to generate (0 = endpoint default)
//	-temperature string  Sampling temperature, forwarded verbatim
//	-top-p string        Nucleus sampling probability, forwarded verbatim
//	-no-stream           Single synchronous invocation instead of streaming
//	-render              Render the final text as markdown
//	-width int           Display width in terminal cells
//	-api-key string      API key (overrides FLUME_API_KEY / OPENAI_API_KEY)
//	-debug               Verbose transport diagnostics on stderr
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/flumekit/flume"
	"github.com/flumekit/flume/cliui"
	"github.com/flumekit/flume/markdown"
	"github.com/flumekit/flume/openai"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "flume: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		baseURL     = flag.String("base-url", "", "Endpoint base URL (default: the OpenAI API)")
		model       = flag.String("model", "", "Model ID (endpoint-specific)")
		system      = flag.String("system", "", "System prompt")
		maxTokens   = flag.Int("max-tokens", 0, "Maximum tokens to generate (0 = endpoint default)")
		temperature = flag.String("temperature", "", "Sampling temperature, forwarded verbatim")
		topP        = flag.String("top-p", "", "Nucleus sampling probability, forwarded verbatim")
		noStream    = flag.Bool("no-stream", false, "Single synchronous invocation instead of streaming")
		renderMD    = flag.Bool("render", false, "Render the final text as markdown")
		width       = flag.Int("width", 100, "Display width in terminal cells")
		apiKey      = flag.String("api-key", "", "API key (overrides FLUME_API_KEY / OPENAI_API_KEY)")
		debug       = flag.Bool("debug", false, "Verbose transport diagnostics on stderr")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := newLogger(os.Stderr, *debug)

	prompt, err := resolvePrompt(flag.Args(), os.Stdin)
	if err != nil {
		return err
	}

	req, err := buildRequest(*model, *system, prompt, *maxTokens, *temperature, *topP)
	if err != nil {
		return err
	}

	// Env is only read here; everything downstream takes values.
	key := *apiKey
	if key == "" {
		key = os.Getenv("FLUME_API_KEY")
	}
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}

	opts := []openai.Option{openai.WithLogger(log)}
	if *baseURL != "" {
		opts = append(opts, openai.WithBaseURL(*baseURL))
	}
	provider := openai.New(key, opts...)

	theme := flume.DefaultTheme()

	if *noStream {
		completion, err := provider.Complete(ctx, req)
		if err != nil {
			return err
		}
		log.Debug().
			Str("finish_reason", completion.FinishReason).
			Int("prompt_tokens", completion.Usage.PromptTokens).
			Int("completion_tokens", completion.Usage.CompletionTokens).
			Msg("completion finished")
		fmt.Println(finalText(completion.Text, *renderMD, *width, theme))
		return nil
	}

	// Live display goes to stderr so stdout stays clean for piping.
	progress := cliui.NewProgress(os.Stderr, *width, theme)
	text, err := flume.Generate(ctx, provider, req, flume.WithProgress(progress.Update))
	progress.Done()
	if err != nil {
		return err
	}
	fmt.Println(finalText(text, *renderMD, *width, theme))
	return nil
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}

// resolvePrompt takes the prompt from argv, falling back to stdin.
func resolvePrompt(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read prompt from stdin: %w", err)
	}
	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return "", fmt.Errorf("no prompt: pass it as an argument or on stdin")
	}
	return prompt, nil
}

// buildRequest assembles the request. Temperature and top-p arrive as
// strings so unset is distinguishable from zero; values parse locally but
// are otherwise forwarded untouched.
func buildRequest(model, system, prompt string, maxTokens int, temperature, topP string) (flume.Request, error) {
	var messages []flume.Message
	if system != "" {
		messages = append(messages, flume.Message{Role: flume.RoleSystem, Content: system})
	}
	messages = append(messages, flume.Message{Role: flume.RoleUser, Content: prompt})

	req := flume.Request{
		Model:     model,
		Messages:  messages,
		MaxTokens: maxTokens,
	}

	if temperature != "" {
		v, err := strconv.ParseFloat(temperature, 64)
		if err != nil {
			return flume.Request{}, fmt.Errorf("invalid -temperature %q: %w", temperature, err)
		}
		req.Temperature = &v
	}
	if topP != "" {
		v, err := strconv.ParseFloat(topP, 64)
		if err != nil {
			return flume.Request{}, fmt.Errorf("invalid -top-p %q: %w", topP, err)
		}
		req.TopP = &v
	}
	return req, nil
}

func finalText(text string, renderMD bool, width int, theme flume.Theme) string {
	if !renderMD {
		return text
	}
	return markdown.Render(text, width, theme)
}
