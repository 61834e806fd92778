package normalizers

import (
	"fmt"
	"strings"

	"attempt-stats/internal/models"

	"github.com/tidwall/gjson"
)

const (
	keyOAuthConsumerKey     = "oauth_consumer_key"
	keyLISResultSourcedID   = "lis_result_sourcedid"
	keyLISOutcomeServiceURL = "lis_outcome_service_url"
)

// DecodePassbackParams decodes a single-quoted dict literal such as
// "{'oauth_consumer_key': '', 'lis_result_sourcedid': '...'}".
// Quotes are swapped for double quotes before parsing, so values that contain
// an apostrophe fail to decode.
func DecodePassbackParams(s string) (models.PassbackParams, error) {
	doc := strings.ReplaceAll(strings.TrimSpace(s), "'", `"`)
	if !gjson.Valid(doc) {
		return models.PassbackParams{}, fmt.Errorf("%w: not valid json", ErrParamDecode)
	}
	parsed := gjson.Parse(doc)
	if !parsed.IsObject() {
		return models.PassbackParams{}, fmt.Errorf("%w: expected an object, got %s", ErrParamDecode, parsed.Type)
	}

	return models.PassbackParams{
		OAuthConsumerKey:     stringField(parsed, keyOAuthConsumerKey),
		LISResultSourcedID:   stringField(parsed, keyLISResultSourcedID),
		LISOutcomeServiceURL: stringField(parsed, keyLISOutcomeServiceURL),
	}, nil
}

// stringField returns nil unless key holds a string.
func stringField(obj gjson.Result, key string) *string {
	value := obj.Get(key)
	if value.Type != gjson.String {
		return nil
	}
	s := value.Str
	return &s
}
