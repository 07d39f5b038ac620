// Code generated by ent, DO NOT EDIT.

package assessmentattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/soltrack/soltrack/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldUserID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldItemID, v))
}

// StandardID applies equality check predicate on the "standard_id" field. It's identical to StandardIDEQ.
func StandardID(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldStandardID, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldSequence, v))
}

// Response applies equality check predicate on the "response" field. It's identical to ResponseEQ.
func Response(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldResponse, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldCorrect, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldScore, v))
}

// MaxScore applies equality check predicate on the "max_score" field. It's identical to MaxScoreEQ.
func MaxScore(v float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldMaxScore, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldFeedback, v))
}

// TimeSpentSeconds applies equality check predicate on the "time_spent_seconds" field. It's identical to TimeSpentSecondsEQ.
func TimeSpentSeconds(v int) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldTimeSpentSeconds, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldContainsFold(FieldUserID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldContainsFold(FieldItemID, v))
}

// StandardIDEQ applies the EQ predicate on the "standard_id" field.
func StandardIDEQ(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldStandardID, v))
}

// StandardIDNEQ applies the NEQ predicate on the "standard_id" field.
func StandardIDNEQ(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNEQ(FieldStandardID, v))
}

// StandardIDIn applies the In predicate on the "standard_id" field.
func StandardIDIn(vs ...string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldIn(FieldStandardID, vs...))
}

// StandardIDNotIn applies the NotIn predicate on the "standard_id" field.
func StandardIDNotIn(vs ...string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNotIn(FieldStandardID, vs...))
}

// StandardIDGT applies the GT predicate on the "standard_id" field.
func StandardIDGT(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGT(FieldStandardID, v))
}

// StandardIDGTE applies the GTE predicate on the "standard_id" field.
func StandardIDGTE(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGTE(FieldStandardID, v))
}

// StandardIDLT applies the LT predicate on the "standard_id" field.
func StandardIDLT(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLT(FieldStandardID, v))
}

// StandardIDLTE applies the LTE predicate on the "standard_id" field.
func StandardIDLTE(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLTE(FieldStandardID, v))
}

// StandardIDContains applies the Contains predicate on the "standard_id" field.
func StandardIDContains(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldContains(FieldStandardID, v))
}

// StandardIDHasPrefix applies the HasPrefix predicate on the "standard_id" field.
func StandardIDHasPrefix(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldHasPrefix(FieldStandardID, v))
}

// StandardIDHasSuffix applies the HasSuffix predicate on the "standard_id" field.
func StandardIDHasSuffix(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldHasSuffix(FieldStandardID, v))
}

// StandardIDEqualFold applies the EqualFold predicate on the "standard_id" field.
func StandardIDEqualFold(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEqualFold(FieldStandardID, v))
}

// StandardIDContainsFold applies the ContainsFold predicate on the "standard_id" field.
func StandardIDContainsFold(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldContainsFold(FieldStandardID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLTE(FieldSequence, v))
}

// ResponseEQ applies the EQ predicate on the "response" field.
func ResponseEQ(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldResponse, v))
}

// ResponseNEQ applies the NEQ predicate on the "response" field.
func ResponseNEQ(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNEQ(FieldResponse, v))
}

// ResponseIn applies the In predicate on the "response" field.
func ResponseIn(vs ...string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldIn(FieldResponse, vs...))
}

// ResponseNotIn applies the NotIn predicate on the "response" field.
func ResponseNotIn(vs ...string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNotIn(FieldResponse, vs...))
}

// ResponseGT applies the GT predicate on the "response" field.
func ResponseGT(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGT(FieldResponse, v))
}

// ResponseGTE applies the GTE predicate on the "response" field.
func ResponseGTE(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGTE(FieldResponse, v))
}

// ResponseLT applies the LT predicate on the "response" field.
func ResponseLT(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLT(FieldResponse, v))
}

// ResponseLTE applies the LTE predicate on the "response" field.
func ResponseLTE(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLTE(FieldResponse, v))
}

// ResponseContains applies the Contains predicate on the "response" field.
func ResponseContains(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldContains(FieldResponse, v))
}

// ResponseHasPrefix applies the HasPrefix predicate on the "response" field.
func ResponseHasPrefix(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldHasPrefix(FieldResponse, v))
}

// ResponseHasSuffix applies the HasSuffix predicate on the "response" field.
func ResponseHasSuffix(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldHasSuffix(FieldResponse, v))
}

// ResponseEqualFold applies the EqualFold predicate on the "response" field.
func ResponseEqualFold(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEqualFold(FieldResponse, v))
}

// ResponseContainsFold applies the ContainsFold predicate on the "response" field.
func ResponseContainsFold(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldContainsFold(FieldResponse, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNEQ(FieldCorrect, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLTE(FieldScore, v))
}

// MaxScoreEQ applies the EQ predicate on the "max_score" field.
func MaxScoreEQ(v float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldMaxScore, v))
}

// MaxScoreNEQ applies the NEQ predicate on the "max_score" field.
func MaxScoreNEQ(v float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNEQ(FieldMaxScore, v))
}

// MaxScoreIn applies the In predicate on the "max_score" field.
func MaxScoreIn(vs ...float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldIn(FieldMaxScore, vs...))
}

// MaxScoreNotIn applies the NotIn predicate on the "max_score" field.
func MaxScoreNotIn(vs ...float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNotIn(FieldMaxScore, vs...))
}

// MaxScoreGT applies the GT predicate on the "max_score" field.
func MaxScoreGT(v float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGT(FieldMaxScore, v))
}

// MaxScoreGTE applies the GTE predicate on the "max_score" field.
func MaxScoreGTE(v float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGTE(FieldMaxScore, v))
}

// MaxScoreLT applies the LT predicate on the "max_score" field.
func MaxScoreLT(v float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLT(FieldMaxScore, v))
}

// MaxScoreLTE applies the LTE predicate on the "max_score" field.
func MaxScoreLTE(v float64) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLTE(FieldMaxScore, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackIsNil applies the IsNil predicate on the "feedback" field.
func FeedbackIsNil() predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldIsNull(FieldFeedback))
}

// FeedbackNotNil applies the NotNil predicate on the "feedback" field.
func FeedbackNotNil() predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNotNull(FieldFeedback))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldContainsFold(FieldFeedback, v))
}

// TimeSpentSecondsEQ applies the EQ predicate on the "time_spent_seconds" field.
func TimeSpentSecondsEQ(v int) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsNEQ applies the NEQ predicate on the "time_spent_seconds" field.
func TimeSpentSecondsNEQ(v int) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNEQ(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsIn applies the In predicate on the "time_spent_seconds" field.
func TimeSpentSecondsIn(vs ...int) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldIn(FieldTimeSpentSeconds, vs...))
}

// TimeSpentSecondsNotIn applies the NotIn predicate on the "time_spent_seconds" field.
func TimeSpentSecondsNotIn(vs ...int) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNotIn(FieldTimeSpentSeconds, vs...))
}

// TimeSpentSecondsGT applies the GT predicate on the "time_spent_seconds" field.
func TimeSpentSecondsGT(v int) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGT(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsGTE applies the GTE predicate on the "time_spent_seconds" field.
func TimeSpentSecondsGTE(v int) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGTE(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsLT applies the LT predicate on the "time_spent_seconds" field.
func TimeSpentSecondsLT(v int) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLT(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsLTE applies the LTE predicate on the "time_spent_seconds" field.
func TimeSpentSecondsLTE(v int) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLTE(FieldTimeSpentSeconds, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.FieldLTE(FieldTimestamp, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItem applies the HasEdge predicate on the "item" edge.
func HasItem() predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ItemTable, ItemColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemWith applies the HasEdge predicate on the "item" edge with a given conditions (other predicates).
func HasItemWith(preds ...predicate.AssessmentItem) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(func(s *sql.Selector) {
		step := newItemStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStandard applies the HasEdge predicate on the "standard" edge.
func HasStandard() predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StandardTable, StandardColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStandardWith applies the HasEdge predicate on the "standard" edge with a given conditions (other predicates).
func HasStandardWith(preds ...predicate.Standard) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(func(s *sql.Selector) {
		step := newStandardStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentAttempt) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentAttempt) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentAttempt) predicate.AssessmentAttempt {
	return predicate.AssessmentAttempt(sql.NotPredicates(p))
}
