// Command dialectic resolves a problem statement through the dialectical
// consensus procedure against a local or remote model endpoint.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/smhanov/dialectic"
	"github.com/smhanov/dialectic/backend"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	personaStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	answerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

var rootCmd = &cobra.Command{
	Use:   "dialectic [problem]",
	Short: "Resolve a problem through dialectical consensus",
	Long: `Dialectic generates three independent reasoning traces under different
analytical stances (Believer, Logician, Contrarian), extracts the boxed
answer from each, and checks for strict consensus. On disagreement a
single arbiter pass reviews all traces and issues the final verdict.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	flags := rootCmd.Flags()
	flags.String("backend", "ollama", "generation backend: ollama or openai")
	flags.String("endpoint", "localhost:11434", "backend endpoint (host:port or base URL)")
	flags.String("model", "", "model name (required)")
	flags.String("api-key", "", "API key for OpenAI-compatible backends")
	flags.String("file", "", "read the problem statement from a file")
	flags.Int("max-tokens", 4096, "output token budget per trace")
	flags.Duration("timeout", 2*time.Minute, "per-call timeout (0 disables)")
	flags.Bool("parallel", false, "generate persona traces concurrently")
	flags.Bool("debug", false, "print full prompts and responses")

	for _, key := range []string{"backend", "endpoint", "model", "api-key", "max-tokens", "timeout", "parallel", "debug"} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
	viper.SetEnvPrefix("DIALECTIC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func run(cmd *cobra.Command, args []string) error {
	problem, err := readProblem(cmd, args)
	if err != nil {
		return err
	}

	model := viper.GetString("model")
	if model == "" {
		return fmt.Errorf("a model is required (--model or DIALECTIC_MODEL)")
	}

	var b dialectic.Backend
	switch name := viper.GetString("backend"); name {
	case "ollama":
		b = backend.NewOllama(viper.GetString("endpoint"), model)
	case "openai":
		b = backend.NewOpenAI(viper.GetString("endpoint"), viper.GetString("api-key"), model)
	default:
		return fmt.Errorf("unknown backend %q (want ollama or openai)", name)
	}

	resolver := dialectic.New(
		dialectic.WithBackend(b),
		dialectic.WithMaxTokens(viper.GetInt("max-tokens")),
		dialectic.WithCallTimeout(viper.GetDuration("timeout")),
		dialectic.WithParallelGeneration(viper.GetBool("parallel")),
		dialectic.WithDebug(viper.GetBool("debug")),
	)

	fmt.Println(headerStyle.Render("Generating dialectical traces..."))
	verdict, err := resolver.Resolve(context.Background(), problem)
	if err != nil {
		return err
	}

	for i, t := range verdict.Traces {
		fmt.Printf("%s %s\n",
			personaStyle.Render(fmt.Sprintf("Trace %d (%s):", i+1, t.Persona.Name)),
			t.Answer)
	}

	fmt.Println()
	switch verdict.Provenance {
	case dialectic.ProvenanceConsensus:
		fmt.Println(headerStyle.Render("Consensus reached"))
	case dialectic.ProvenanceArbiter:
		fmt.Println(headerStyle.Render("Contradiction detected, arbiter verdict"))
	}
	fmt.Printf("%s %s\n", answerStyle.Render("Answer:"), verdict.Answer)
	fmt.Println(faintStyle.Render(fmt.Sprintf("provenance: %s", verdict.Provenance)))
	return nil
}

// readProblem takes the problem statement from the positional argument, the
// --file flag, or stdin, in that order of preference.
func readProblem(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read problem file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	fmt.Fprintln(os.Stderr, "Enter the problem statement, end with EOF (Ctrl-D):")
	var b strings.Builder
	buf := make([]byte, 4096)
	for {
		n, err := os.Stdin.Read(buf)
		b.Write(buf[:n])
		if err != nil {
			break
		}
	}
	problem := strings.TrimSpace(b.String())
	if problem == "" {
		return "", fmt.Errorf("no problem statement provided")
	}
	return problem, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
