package cmd

import (
	"HueKit/internal/color"
	"HueKit/internal/config"
	"HueKit/internal/console"
	"HueKit/internal/logger"
	"HueKit/internal/palette"
	"context"
	"errors"
	"fmt"
	"io"
)

func handlePalette(ctx context.Context, group *CommandGroup, conf *config.AppConfig, w io.Writer) error {
	opts := conf.ParseOptions()
	p, err := palette.LoadNamed(conf.PalettesDir, group.Args[0], opts)
	if err != nil {
		return err
	}
	logger.Info(ctx, "Loaded palette '{{_Palette_}}%s{{|-|}}' from '{{_File_}}%s{{|-|}}'", p.Name, p.Path)

	var background *color.Value
	if len(group.Args) > 1 {
		background, err = color.NewWithOptions(group.Args[1], opts)
		if err != nil {
			return err
		}
	}

	report, err := palette.Audit(p, background, conf.Contrast.Minimum)
	if errors.Is(err, palette.ErrNoBackground) {
		return fmt.Errorf("palette '{{_Palette_}}%s{{|-|}}' has no background, pass one after the palette name", p.Name)
	}
	if err != nil {
		return err
	}

	headers := []string{
		"{{_UsageCommand_}}Name{{|-|}}",
		"{{_UsageCommand_}}Color{{|-|}}",
		"{{_UsageCommand_}}Sample{{|-|}}",
		"{{_UsageCommand_}}Ratio{{|-|}}",
		"{{_UsageCommand_}}Level{{|-|}}",
		"{{_UsageCommand_}}Result{{|-|}}",
	}
	var data []string
	for _, r := range report.Results {
		result := "{{_Pass_}}pass{{|-|}}"
		if !r.Pass {
			result = "{{_Fail_}}fail{{|-|}}"
		}
		data = append(data,
			r.Entry.Name,
			fmt.Sprintf("{{_Color_}}%s{{|-|}}", r.Entry.Value.Format(conf.OutputFormat())),
			console.Swatch(report.Background, r.Entry.Value, conf.UI.SwatchWidth, "Aa"),
			fmt.Sprintf("{{_Ratio_}}%.2f:1{{|-|}}", r.Ratio),
			levelTag(r.Level),
			result,
		)
	}

	console.Fprintln(w, fmt.Sprintf("Palette {{_Palette_}}%s{{|-|}} on {{_Color_}}%s{{|-|}}, minimum {{_Ratio_}}%g:1{{|-|}}", p.Name, report.Background.Hex(), report.Minimum))
	console.FprintTable(w, headers, data, conf.UI.LineCharacters)

	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d colors in palette '{{_Palette_}}%s{{|-|}}' are below {{_Ratio_}}%g:1{{|-|}}", failed, len(report.Results), p.Name, report.Minimum)
	}
	return nil
}

func handlePaletteList(ctx context.Context, conf *config.AppConfig, w io.Writer) error {
	names, err := palette.List(conf.PalettesDir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		logger.Notice(ctx, "No palettes found in '{{_Folder_}}%s{{|-|}}'.", conf.PalettesDir)
		return nil
	}
	for _, name := range names {
		console.Fprintln(w, fmt.Sprintf("{{_Palette_}}%s{{|-|}}", name))
	}
	return nil
}

func handlePaletteExport(ctx context.Context, group *CommandGroup, conf *config.AppConfig, w io.Writer) error {
	format := conf.OutputFormat()
	if len(group.Args) > 1 {
		f, err := color.ParseFormat(group.Args[1])
		if err != nil {
			return err
		}
		format = f
	}

	p, err := palette.LoadNamed(conf.PalettesDir, group.Args[0], conf.ParseOptions())
	if err != nil {
		return err
	}
	data, err := palette.Encode(p, format)
	if err != nil {
		return err
	}
	logger.Info(ctx, "Exporting palette '{{_Palette_}}%s{{|-|}}' as {{_Format_}}%s{{|-|}}", p.Name, format)
	_, err = w.Write(data)
	return err
}
