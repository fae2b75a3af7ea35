package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notaneet/rasp51cli/config"
	"github.com/notaneet/rasp51cli/controller"
	"github.com/notaneet/rasp51cli/plugin"
	"github.com/notaneet/rasp51cli/session"
)

func main() {
	var cfg = config.ParserConfig{}

	var (
		locale,
		localeFile,
		pluginName,
		converterName,
		output string
	)

	rootCmd := &cobra.Command{
		Use:   "rasp51cli",
		Short: "Интерактивная консоль расписания и изменений",
		Long: `rasp51cli читает выгрузки отдела расписания (xlsx) и в интерактивной
сессии разбирает, показывает и сохраняет недельное расписание группы
и изменения к нему.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			locales, err := config.LoadLocales(localeFile)
			if err != nil {
				return err
			}
			msgs := locales.MessagesFor(locale)

			plug := plugin.NewPlugin(pluginName, cfg)
			if plug == nil {
				return fmt.Errorf("%s не найден", pluginName)
			}

			ctrl := controller.New(cmd.OutOrStdout(), msgs, controller.Options{
				Plugin:    plug,
				Converter: converterName,
				Output:    output,
				Terminate: func() { os.Exit(0) },
			})

			registry := session.NewRegistry(msgs, ctrl)
			session.NewLoop(cmd.InOrStdin(), cmd.OutOrStdout(), registry, msgs).Run()
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.Var(&cfg.GroupMatcher.MatchRaw, "group", "Требуемые группы")
	flags.Var(&cfg.LessonMatcher.MatchRaw, "lesson", "Требуемые предметы")
	flags.Var(&cfg.LecturerMatcher.MatchRaw, "lecturer", "Требуемые преподаватели")
	flags.Var(&cfg.CampusMatcher.MatchRaw, "campus", "Требуемые корпуса и аудитории")
	flags.StringVar(&locale, "locale", config.DefaultLocale, "Локаль текстов сессии")
	flags.StringVar(&localeFile, "locale-file", "", "YAML с переопределением текстов")
	flags.StringVar(&pluginName, "plugin", "МАГУ", "Требуемое учебное учреждение")
	flags.StringVar(&converterName, "converter", "pjson", "Тип выходных данных для write")
	flags.StringVar(&output, "output", "data.out", "Файл, куда write пишет результат")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
