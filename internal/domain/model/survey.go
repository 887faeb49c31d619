package model

// SurveyQuestionType enumerates the supported question widgets.
type SurveyQuestionType string

const (
	SurveyTypeScale       SurveyQuestionType = "scale"
	SurveyTypeMultiSelect SurveyQuestionType = "multiselect"
	SurveyTypeRadio       SurveyQuestionType = "radio"
)

// SurveyScale describes the bounds and labels of a scale question.
type SurveyScale struct {
	Min    int      `json:"min"`
	Max    int      `json:"max"`
	Labels []string `json:"labels"`
}

// SurveyQuestion is one wellness survey question.
// Scale is set only for scale questions; Options only for multiselect/radio.
type SurveyQuestion struct {
	ID       int                `json:"id"`
	Question string             `json:"question"`
	Type     SurveyQuestionType `json:"type"`
	Scale    *SurveyScale       `json:"scale,omitempty"`
	Options  []string           `json:"options,omitempty"`
}

// SurveyReceipt acknowledges a survey submission.
type SurveyReceipt struct {
	ID        int64  `json:"id"`
	Submitted bool   `json:"submitted"`
	Message   string `json:"message"`
}
