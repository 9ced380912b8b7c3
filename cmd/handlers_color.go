package cmd

import (
	"HueKit/internal/color"
	"HueKit/internal/config"
	"HueKit/internal/console"
	"HueKit/internal/logger"
	"context"
	"fmt"
	"io"
	"strconv"
)

func handleInfo(ctx context.Context, group *CommandGroup, conf *config.AppConfig, w io.Writer) error {
	candidates, err := conf.Candidates()
	if err != nil {
		return err
	}

	headers := []string{
		"{{_UsageCommand_}}Property{{|-|}}",
		"{{_UsageCommand_}}Value{{|-|}}",
	}

	for i, arg := range group.Args {
		v, err := color.NewWithOptions(arg, conf.ParseOptions())
		if err != nil {
			return err
		}
		format, _ := color.DetectFormat(arg)
		logger.Debug(ctx, "Parsed '{{_Color_}}%s{{|-|}}' as {{_Format_}}%s{{|-|}}", arg, format)

		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, console.AutoSwatch(v, conf.UI.SwatchWidth, v.Hex(), candidates...))

		var data []string
		for _, f := range color.Formats {
			data = append(data, fmt.Sprintf("{{_Format_}}%s{{|-|}}", f), fmt.Sprintf("{{_Color_}}%s{{|-|}}", v.Format(f)))
		}
		hue := strconv.Itoa(v.Hue())
		if v.Primaries().Achromatic() {
			hue += " (achromatic)"
		}
		data = append(data,
			"Red", strconv.Itoa(v.Red()),
			"Green", strconv.Itoa(v.Green()),
			"Blue", strconv.Itoa(v.Blue()),
			"Hue", hue,
			"Saturation", formatFraction(v.Saturation()),
			"Lightness", formatFraction(v.Lightness()),
			"Alpha", formatFraction(v.Alpha()),
			"Luminance", fmt.Sprintf("{{_Ratio_}}%.4f{{|-|}}", v.Luminance()),
		)
		if console.Verbose() {
			c := v.LuminanceComponents()
			data = append(data,
				"Linear Red", fmt.Sprintf("%.4f", c.Red),
				"Linear Green", fmt.Sprintf("%.4f", c.Green),
				"Linear Blue", fmt.Sprintf("%.4f", c.Blue),
			)
		}
		data = append(data, "Foreground", fmt.Sprintf("{{_Color_}}%s{{|-|}}", color.PickForeground(v, candidates...).Hex()))

		console.FprintTable(w, headers, data, conf.UI.LineCharacters)
	}
	return nil
}

func handleConvert(ctx context.Context, group *CommandGroup, conf *config.AppConfig, w io.Writer) error {
	format, err := color.ParseFormat(group.Args[0])
	if err != nil {
		return err
	}
	for _, arg := range group.Args[1:] {
		v, err := color.NewWithOptions(arg, conf.ParseOptions())
		if err != nil {
			return err
		}
		logger.Info(ctx, "'{{_Color_}}%s{{|-|}}' to {{_Format_}}%s{{|-|}}", arg, format)
		if v.Alpha() < 1 && !format.HasAlpha() {
			logger.Warn(ctx, "The {{_Format_}}%s{{|-|}} format drops the alpha of '{{_Color_}}%s{{|-|}}'.", format, arg)
		}
		fmt.Fprintln(w, v.Format(format))
	}
	return nil
}

// handleLenient runs the forgiving conversions. Input that does not convert
// produces no output, only a warning, and never fails the command.
func handleLenient(ctx context.Context, group *CommandGroup, w io.Writer) error {
	convert := color.HexToRGBA
	switch group.Command {
	case "--hsla-to-rgba":
		convert = color.HSLAToRGBA
	case "--rgba-to-hex":
		convert = color.RGBAToHex
	}

	for _, arg := range group.Args {
		result, ok := convert(arg)
		if !ok {
			logger.Warn(ctx, "'{{_Color_}}%s{{|-|}}' is not a valid color, skipping.", arg)
			continue
		}
		fmt.Fprintln(w, result)
	}
	return nil
}

func handleContrast(ctx context.Context, group *CommandGroup, conf *config.AppConfig, w io.Writer) error {
	opts := conf.ParseOptions()
	a, err := color.NewWithOptions(group.Args[0], opts)
	if err != nil {
		return err
	}
	b, err := color.NewWithOptions(group.Args[1], opts)
	if err != nil {
		return err
	}

	ratio := color.ContrastRatio(a, b)
	level := color.Grade(ratio)
	logger.Info(ctx, "Contrast of '{{_Color_}}%s{{|-|}}' and '{{_Color_}}%s{{|-|}}'", a, b)

	result := "{{_Pass_}}pass{{|-|}}"
	if ratio < conf.Contrast.Minimum {
		result = "{{_Fail_}}fail{{|-|}}"
	}
	console.Fprintln(w, fmt.Sprintf("{{_Ratio_}}%.2f:1{{|-|}} %s %s", ratio, levelTag(level), result))
	fmt.Fprintln(w, console.Swatch(a, b, conf.UI.SwatchWidth, b.Hex()))
	return nil
}

func handleForeground(ctx context.Context, group *CommandGroup, conf *config.AppConfig, w io.Writer) error {
	opts := conf.ParseOptions()
	background, err := color.NewWithOptions(group.Args[0], opts)
	if err != nil {
		return err
	}

	var candidates []*color.Value
	if len(group.Args) > 1 {
		for _, arg := range group.Args[1:] {
			v, err := color.NewWithOptions(arg, opts)
			if err != nil {
				return err
			}
			candidates = append(candidates, v)
		}
	} else {
		candidates, err = conf.Candidates()
		if err != nil {
			return err
		}
	}

	picked := color.PickForeground(background, candidates...)
	logger.Info(ctx, "Picked '{{_Color_}}%s{{|-|}}' on '{{_Color_}}%s{{|-|}}' at {{_Ratio_}}%.2f:1{{|-|}}", picked, background, color.ContrastRatio(background, picked))
	fmt.Fprintln(w, picked.Format(conf.OutputFormat()))
	return nil
}

func levelTag(level color.Level) string {
	if level == color.LevelFail {
		return fmt.Sprintf("{{_Fail_}}%s{{|-|}}", level)
	}
	return fmt.Sprintf("{{_Pass_}}%s{{|-|}}", level)
}

func formatFraction(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
