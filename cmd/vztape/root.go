// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/vztape/tape"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	verbose bool
	logger  *slog.Logger

	sampleRate      int
	halfCycle       int
	leadSilence     int
	gapSilence      int
	gapNull         int
	threshold       uint8
	leaderThreshold uint8
	syncBudget      int
	maxPayload      int
	magic           string
}

func newRootCmd() *cobra.Command {
	o := &options{}
	d := tape.DefaultParams()

	rootCmd := &cobra.Command{
		Use:          "vztape",
		Short:        "Convert VZ200 tape images to and from cassette audio",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if o.verbose {
				level = slog.LevelDebug
			}
			o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return nil
		},
	}

	f := rootCmd.PersistentFlags()
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log sync progress and header details")
	f.IntVar(&o.sampleRate, "sample-rate", d.SampleRate, "sample rate in Hz; other timings are derived from it")
	f.IntVar(&o.halfCycle, "half-cycle", 0, "samples per half-cycle (0 derives it from the sample rate)")
	f.IntVar(&o.leadSilence, "lead-silence", d.LeadSilence, "silence samples before and after the tape")
	f.IntVar(&o.gapSilence, "gap-silence", d.GapSilenceSamples, "silence samples in the gap after the filename")
	f.IntVar(&o.gapNull, "gap-null", d.GapNullSamples, "null samples ending the gap after the filename")
	f.Uint8Var(&o.threshold, "threshold", d.Threshold, "level above which a sample counts as high")
	f.Uint8Var(&o.leaderThreshold, "leader-threshold", d.LeaderThreshold, "level that marks the start of the carrier")
	f.IntVar(&o.syncBudget, "sync-budget", d.SyncBudget, "byte reads allowed while aligning to the leader")
	f.IntVar(&o.maxPayload, "max-payload", d.MaxPayload, "largest payload the decoder accepts")
	f.StringVar(&o.magic, "magic", "", "4-character magic for decoded .vz files (default from the file type)")

	rootCmd.AddCommand(
		newEncodeCmd(o),
		newDecodeCmd(o),
		newCasCmd(o),
		newInfoCmd(o),
	)

	return rootCmd
}

// params resolves the flags into tape parameters. Flags left at their
// defaults follow --sample-rate.
func (o *options) params(cmd *cobra.Command) (tape.Params, error) {
	p := tape.ParamsForRate(o.sampleRate)
	flags := cmd.Flags()

	if flags.Changed("half-cycle") {
		p.HalfCycleSamples = o.halfCycle
	}
	if flags.Changed("lead-silence") {
		p.LeadSilence = o.leadSilence
	}
	if flags.Changed("gap-silence") {
		p.GapSilenceSamples = o.gapSilence
	}
	if flags.Changed("gap-null") {
		p.GapNullSamples = o.gapNull
	}
	p.Threshold = o.threshold
	p.LeaderThreshold = o.leaderThreshold
	p.SyncBudget = o.syncBudget
	p.MaxPayload = o.maxPayload

	if err := p.Validate(); err != nil {
		return p, err
	}

	return p, nil
}

func (o *options) encoder(cmd *cobra.Command) (*tape.Encoder, error) {
	p, err := o.params(cmd)
	if err != nil {
		return nil, err
	}

	return &tape.Encoder{Params: p, Logger: o.logger}, nil
}

func (o *options) decoder(cmd *cobra.Command) (*tape.Decoder, error) {
	p, err := o.params(cmd)
	if err != nil {
		return nil, err
	}

	dec := &tape.Decoder{Params: p, Logger: o.logger}
	if o.magic != "" {
		if len(o.magic) != len(dec.Magic) {
			return nil, fmt.Errorf("--magic %q: must be %d characters", o.magic, len(dec.Magic))
		}
		copy(dec.Magic[:], o.magic)
	}

	return dec, nil
}
