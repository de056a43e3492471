package utils

import (
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

// InitI18NBundle loads every yaml message file under the configured i18n
// directory. English is the fallback language.
func InitI18NBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := filepath.Glob(filepath.Join(viper.GetString("i18n.dir"), "*.yaml"))
	if err != nil {
		panic(err)
	}
	for _, f := range files {
		bundle.MustLoadMessageFile(f)
	}
}

func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang, language.English.String())
}
