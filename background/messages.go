package background

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/kizuna-community/kizuna-api/utils"
)

// RequestMessage returns localized headings and contents for a request
// notification, keyed by onesignal language code. templateData is handed to
// the content template (e.g. the request title or remaining time).
func RequestMessage(msgType string, templateData map[string]interface{}) (map[string]string, map[string]string, error) {
	headings := map[string]string{}
	contents := map[string]string{}

	for key, lang := range OneSignalLanguageCode {
		loc := utils.NewLocalizer(lang)

		heading, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: fmt.Sprintf("notification.%s.heading", msgType),
		})
		if err != nil {
			return nil, nil, err
		}
		headings[key] = heading

		content, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID:    fmt.Sprintf("notification.%s.content", msgType),
			TemplateData: templateData,
		})
		if err != nil {
			return nil, nil, err
		}
		contents[key] = content
	}

	return headings, contents, nil
}
