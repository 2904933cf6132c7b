package main

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rhyrak/go-syllabus/internal/config"
	"github.com/rhyrak/go-syllabus/internal/csvio"
	"github.com/rhyrak/go-syllabus/internal/log"
	"github.com/rhyrak/go-syllabus/internal/render"
	"github.com/rhyrak/go-syllabus/internal/scheduler"
	"github.com/rhyrak/go-syllabus/pkg/model"
)

const (
	syllabusUsage     = "syllabus"
	syllabusShortDesc = "Generate a syllabus from basic parameters"
	syllabusLongDesc  = `syllabus lists every class meeting between a start and an end date,
skipping holidays, and pairs each meeting with a topic read from standard
input (one line per meeting). The table is printed as csv, tex, html, ics
or xlsx.`
	syllabusExample = `  syllabus -s 2024-09-02 -e 2024-12-13 -d MWF -x holidays.txt < topics.txt
  syllabus -s 2024-09-03 -e 2024-12-12 -d TR -f tex -c 2 < topics.txt`
)

type flagValues struct {
	configPath string
	opts       config.Options
}

func newRootCmd() *cobra.Command {
	fv := &flagValues{opts: config.Default()}

	c := &cobra.Command{
		Use:           syllabusUsage,
		Short:         syllabusShortDesc,
		Long:          syllabusLongDesc,
		Example:       syllabusExample,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, fv)
			if err != nil {
				return err
			}
			return run(cmd, opts)
		},
	}

	f := c.Flags()
	f.StringVarP(&fv.opts.StartDate, "start-date", "s", "", "Start date (YYYY-MM-DD)")
	f.StringVarP(&fv.opts.EndDate, "end-date", "e", "", "End date (YYYY-MM-DD)")
	f.StringVarP(&fv.opts.MeetingDays, "meeting-days", "d", "", `Days class will meet (e.g. "MWF" or "TR")`)
	f.StringVarP(&fv.opts.Holidays, "holidays", "x", "", "File listing special days classes will not meet")
	f.StringVarP(&fv.opts.DateFormat, "date-format", "a", fv.opts.DateFormat, "Format for the date")
	f.StringVarP(&fv.opts.Format, "format", "f", fv.opts.Format, "Output format ("+strings.Join(render.Names(), ", ")+")")
	f.IntVarP(&fv.opts.Columns, "columns", "c", fv.opts.Columns, "Number of extra columns to add")
	f.BoolVar(&fv.opts.Escape, "escape", false, "Quote csv cells and escape html cells")
	f.StringVarP(&fv.opts.Output, "output", "o", "", "Write the table to this file instead of standard output")
	f.StringVar(&fv.opts.LogLevel, "log-level", fv.opts.LogLevel, "Diagnostic level (debug, info, warn, error)")
	f.StringVar(&fv.configPath, "config", "", "YAML file with default settings")

	return c
}

// resolveOptions layers explicitly set flags over the config file and
// environment, then validates the result.
func resolveOptions(cmd *cobra.Command, fv *flagValues) (config.Options, error) {
	opts, err := config.Load(fv.configPath)
	if err != nil {
		return opts, err
	}

	flags := cmd.Flags()
	overrides := []struct {
		name  string
		apply func()
	}{
		{"start-date", func() { opts.StartDate = fv.opts.StartDate }},
		{"end-date", func() { opts.EndDate = fv.opts.EndDate }},
		{"meeting-days", func() { opts.MeetingDays = fv.opts.MeetingDays }},
		{"holidays", func() { opts.Holidays = fv.opts.Holidays }},
		{"date-format", func() { opts.DateFormat = fv.opts.DateFormat }},
		{"format", func() { opts.Format = fv.opts.Format }},
		{"columns", func() { opts.Columns = fv.opts.Columns }},
		{"escape", func() { opts.Escape = fv.opts.Escape }},
		{"output", func() { opts.Output = fv.opts.Output }},
		{"log-level", func() { opts.LogLevel = fv.opts.LogLevel }},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			o.apply()
		}
	}

	return opts, opts.Validate()
}

func run(cmd *cobra.Command, opts config.Options) error {
	if err := log.Init(cmd.ErrOrStderr(), opts.LogLevel); err != nil {
		return err
	}

	format, err := render.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	days, invalid := scheduler.ParseMeetingDays(opts.MeetingDays)
	for _, c := range invalid {
		log.Warn("invalid day of the week %c", c)
	}

	start, err := scheduler.ParseDate(opts.StartDate)
	if err != nil {
		return errors.Wrap(err, "start date")
	}
	end, err := scheduler.ParseDate(opts.EndDate)
	if err != nil {
		return errors.Wrap(err, "end date")
	}

	holidays := model.HolidaySet{}
	if opts.Holidays != "" {
		if holidays, err = csvio.LoadHolidays(opts.Holidays); err != nil {
			return err
		}
		log.Debug("loaded %d holidays from %s", len(holidays), opts.Holidays)
	}

	if valid, msg := scheduler.Validate(start, end, days, holidays); !valid {
		for _, line := range strings.Split(strings.TrimSpace(msg), "\n") {
			log.Info("%s", line)
		}
	}

	dates, err := scheduler.EnumerateDates(start, end, days, holidays, scheduler.NewDateFormatter(opts.DateFormat))
	if err != nil {
		return err
	}
	log.Debug("enumerated %d meeting dates between %s and %s", len(dates), start, end)

	topics, err := csvio.ReadTopics(cmd.InOrStdin(), len(dates))
	if err != nil {
		return err
	}
	if len(topics) > len(dates) {
		log.Debug("dropping %d topics beyond the last meeting date", len(topics)-len(dates))
	}

	table := render.BuildTable(dates, topics, opts.Columns)

	// Render fully before writing so a failure leaves no partial output.
	var buf bytes.Buffer
	if err := render.Render(&buf, table, format, render.Options{Escape: opts.Escape}); err != nil {
		return err
	}

	if opts.Output != "" {
		path, err := csvio.Export(opts.Output, buf.Bytes())
		if err != nil {
			return err
		}
		log.Info("exported output to %s", path)
		return nil
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return errors.Wrap(err, "failed to write output")
}
