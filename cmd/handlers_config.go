package cmd

import (
	"HueKit/internal/config"
	"HueKit/internal/console"
	"HueKit/internal/constants"
	"HueKit/internal/logger"
	"HueKit/internal/paths"
	"context"
	"fmt"
	"io"
)

func handleConfigShow(ctx context.Context, conf *config.AppConfig, w io.Writer) error {
	headers := []string{
		"{{_UsageCommand_}}Option{{|-|}}",
		"{{_UsageCommand_}}Value{{|-|}}",
		"{{_UsageCommand_}}Expanded Value{{|-|}}",
	}

	var data []string
	for _, key := range config.Keys {
		value, err := conf.Get(key)
		if err != nil {
			return err
		}

		colorTag := "{{_Var_}}"
		expanded := ""
		if key == constants.PalettesFolderKey {
			colorTag = "{{_Folder_}}"
			expanded = fmt.Sprintf("%s%s{{|-|}}", colorTag, conf.PalettesDir)
		}

		data = append(data, key, fmt.Sprintf("%s%s{{|-|}}", colorTag, value), expanded)
	}

	logger.Info(ctx, "Configuration options stored in '{{_File_}}%s{{|-|}}':", paths.GetConfigFilePath())
	console.FprintTable(w, headers, data, conf.UI.LineCharacters)
	return nil
}

func handleConfigSet(ctx context.Context, group *CommandGroup, conf *config.AppConfig) error {
	key, value := group.Args[0], group.Args[1]
	if err := conf.Set(key, value); err != nil {
		return err
	}
	if err := config.SaveAppConfig(*conf); err != nil {
		return fmt.Errorf("saving '{{_File_}}%s{{|-|}}': %w", paths.GetConfigFilePath(), err)
	}
	current, _ := conf.Get(key)
	logger.Notice(ctx, "Set '{{_Var_}}%s{{|-|}}' to '{{_Var_}}%s{{|-|}}'.", key, current)
	return nil
}
