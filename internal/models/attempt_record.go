package models

import "time"

// RawAttemptRecord is one item of the statistics API response body, as received.
//
// Example JSON:
//
//	{
//	  "lti_user_id": "3583bf109f8b458e13ae1ac9d85c396a",
//	  "passback_params": "{'oauth_consumer_key': '', 'lis_result_sourcedid': 'course-v1:SkillFactory+DST-3.0+28FEB2021:lms.skillfactory.ru-ca3ecf8e5f284c329eb7bd529e1a9f7e:3583bf109f8b458e13ae1ac9d85c396a', 'lis_outcome_service_url': 'https://lms.skillfactory.ru/courses/course-v1:SkillFactory+DST-3.0+28FEB2021/xblock/block-v1:SkillFactory+DST-3.0+28FEB2021+type@lti+block@ca3ecf8e5f284c329eb7bd529e1a9f7e/handler_noauth/grade_handler'}",
//	  "attempt_type": "run",
//	  "created_at": "2023-04-01 12:46:54.169469",
//	  "is_correct": null
//	}
//
// passback_params is a Python-style dict literal (single quotes), not JSON.
type RawAttemptRecord struct {
	UserID         string `json:"lti_user_id" validate:"required"`
	PassbackParams string `json:"passback_params"`
	AttemptType    string `json:"attempt_type" validate:"required"`
	CreatedAt      string `json:"created_at" validate:"required"`
	IsCorrect      *bool  `json:"is_correct"`
}

// PassbackParams are the LTI outcome-service parameters carried by an attempt.
// Every field is nil when the key is absent or not a string.
type PassbackParams struct {
	OAuthConsumerKey     *string `json:"oauth_consumer_key"`
	LISResultSourcedID   *string `json:"lis_result_sourcedid"`
	LISOutcomeServiceURL *string `json:"lis_outcome_service_url"`
}

// NormalizedRecord is the flat, seven-field form of an attempt that is persisted and logged.
type NormalizedRecord struct {
	UserID               string    `json:"user_id"`
	OAuthConsumerKey     *string   `json:"oauth_consumer_key"`
	LISResultSourcedID   *string   `json:"lis_result_sourcedid"`
	LISOutcomeServiceURL *string   `json:"lis_outcome_service_url"`
	IsCorrect            *bool     `json:"is_correct"`
	AttemptType          string    `json:"attempt_type"`
	CreatedAt            time.Time `json:"created_at"`
}

// NewNormalizedRecord flattens a raw record and its decoded passback params.
func NewNormalizedRecord(raw RawAttemptRecord, params PassbackParams, createdAt time.Time) NormalizedRecord {
	return NormalizedRecord{
		UserID:               raw.UserID,
		OAuthConsumerKey:     params.OAuthConsumerKey,
		LISResultSourcedID:   params.LISResultSourcedID,
		LISOutcomeServiceURL: params.LISOutcomeServiceURL,
		IsCorrect:            raw.IsCorrect,
		AttemptType:          raw.AttemptType,
		CreatedAt:            createdAt,
	}
}

// Attempt is implemented by both record shapes so they can be aggregated alike.
type Attempt interface {
	AttemptUserID() string
	Successful() bool
}

func (r RawAttemptRecord) AttemptUserID() string { return r.UserID }

// Successful reports is_correct == true; a missing value counts as unsuccessful.
func (r RawAttemptRecord) Successful() bool { return r.IsCorrect != nil && *r.IsCorrect }

func (r NormalizedRecord) AttemptUserID() string { return r.UserID }

func (r NormalizedRecord) Successful() bool { return r.IsCorrect != nil && *r.IsCorrect }
