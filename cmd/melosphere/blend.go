package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dasmlab/melosphere/pkg/lyric"
	"github.com/dasmlab/melosphere/pkg/translate"
)

// blendCmd creates the one-shot blend command: translate, enhance, blend,
// print.
func blendCmd() *cobra.Command {
	var langs []string
	var mode string
	var noEnhance bool
	var maxFillers int
	var keywords []string

	cmd := &cobra.Command{
		Use:   "blend [line]",
		Short: "Translate a lyric line and blend the translations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := strings.TrimSpace(args[0])
			if line == "" {
				return fmt.Errorf("lyric line is empty")
			}

			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if len(langs) > 0 {
				cfg.TargetLangs = langs
			}
			if mode != "" {
				cfg.BlendMode = mode
			}
			blendMode, err := lyric.ParseBlendMode(cfg.BlendMode)
			if err != nil {
				return err
			}
			if maxFillers > 0 {
				cfg.MaxFillers = maxFillers
			}
			if len(keywords) > 0 {
				cfg.Keywords = keywords
			}

			engineType, err := translate.ParseEngineType(cfg.Engine)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			translator, err := translate.NewTranslator(ctx, translate.Config{
				Engine:  engineType,
				BaseURL: cfg.EngineURL,
				Logger:  logger,
			})
			if err != nil {
				return err
			}

			fanout := translate.NewFanOut(translator, logger, cfg.MaxConcurrent)
			estimator := lyric.NewEstimator()
			enhancer := lyric.NewEnhancerWithFillers(estimator, nil, cfg.MaxFillers)

			byLang := fanout.TranslateAll(ctx, line, cfg.SourceLang, cfg.TargetLangs)

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LANG\tLINE\tSYLLABLES\tDEFICIT\tFILLERS")

			blendInputs := make([]string, 0, len(cfg.TargetLangs))
			for _, lang := range cfg.TargetLangs {
				tr := byLang[lang]
				text := lyric.PreserveKeywords(line, tr.Text, cfg.Keywords)

				display := text
				counts := fmt.Sprintf("%d", estimator.Estimate(text, lang))
				deficit, fillers := 0, 0
				if !noEnhance {
					enh := enhancer.Enhance(line, text)
					display = enh.Enhanced
					counts = fmt.Sprintf("%d->%d/%d", enh.TranslatedBefore, enh.TranslatedAfter, enh.OriginalSyllables)
					deficit = enh.Deficit
					fillers = enh.Fillers
				}
				note := display
				if tr.Err != nil {
					note += " (translation failed, using original)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", lang, note, counts, deficit, fillers)
				blendInputs = append(blendInputs, display)
			}
			tw.Flush()

			fmt.Fprintln(out)
			fmt.Fprintln(out, lyric.Blend(line, blendInputs, blendMode))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&langs, "langs", nil, "target languages (comma separated)")
	cmd.Flags().StringVar(&mode, "mode", "", "blend mode: interleave, phrase-swap or last-word-swap")
	cmd.Flags().BoolVar(&noEnhance, "no-enhance", false, "skip rhythmic filler insertion")
	cmd.Flags().IntVar(&maxFillers, "max-fillers", 0, "maximum filler tokens per line")
	cmd.Flags().StringSliceVar(&keywords, "keep", nil, "English keywords to preserve verbatim")

	return cmd
}
