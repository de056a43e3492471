package background

import (
	"context"

	"github.com/spf13/viper"

	"github.com/kizuna-community/kizuna-api/external/onesignal"
)

// OneSignalLanguageCode is a mapping between onesignal language code and i18n language code
var OneSignalLanguageCode = map[string]string{
	"en": "en",
}

// memberTagFilters batches member IDs into onesignal tag-filter expressions,
// at most 100 members per batch, OR-ed within a batch. Never yields an empty
// batch: onesignal reads empty filters as "every subscriber".
func memberTagFilters(memberIDs []string) [][]map[string]string {
	batches := [][]map[string]string{}
	filters := []map[string]string{}
	for i, id := range memberIDs {
		if i%100 != 0 {
			filters = append(filters, map[string]string{"operator": "OR"})
		}
		filters = append(filters, map[string]string{
			"field":    "tag",
			"key":      "member_id",
			"relation": "=",
			"value":    id,
		})
		if i%100 == 99 {
			batches = append(batches, filters)
			filters = []map[string]string{}
		}
	}
	if len(filters) > 0 {
		batches = append(batches, filters)
	}
	return batches
}

// NotifyMembersByTemplate will consolidate member IDs and submit notification requests
func (b *Background) NotifyMembersByTemplate(memberIDs []string, templateID string, data map[string]interface{}) error {
	for _, filters := range memberTagFilters(memberIDs) {
		req := &onesignal.NotificationRequest{
			AppID:          viper.GetString("onesignal.appid"),
			TemplateID:     templateID,
			Filters:        filters,
			Data:           data,
			LocalChannelID: "community_alert",
		}
		if err := b.Onesignal.SendNotification(context.Background(), req); err != nil {
			return err
		}
	}
	return nil
}

// NotifyMemberByText will send message to a member by raw headings, contents and data
func (b *Background) NotifyMemberByText(memberID string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{
		{
			"field":    "tag",
			"key":      "member_id",
			"relation": "=",
			"value":    memberID,
		},
	}

	req := &onesignal.NotificationRequest{
		AppID:          viper.GetString("onesignal.appid"),
		Headings:       headings,
		Contents:       contents,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "community_alert",
	}
	return b.Onesignal.SendNotification(context.Background(), req)
}
