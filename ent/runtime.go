// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/soltrack/soltrack/ent/assessmentattempt"
	"github.com/soltrack/soltrack/ent/assessmentitem"
	"github.com/soltrack/soltrack/ent/llmrequestevent"
	"github.com/soltrack/soltrack/ent/schema"
	"github.com/soltrack/soltrack/ent/standard"
	"github.com/soltrack/soltrack/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentattemptFields := schema.AssessmentAttempt{}.Fields()
	_ = assessmentattemptFields
	// assessmentattemptDescUserID is the schema descriptor for user_id field.
	assessmentattemptDescUserID := assessmentattemptFields[1].Descriptor()
	// assessmentattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	assessmentattempt.UserIDValidator = assessmentattemptDescUserID.Validators[0].(func(string) error)
	// assessmentattemptDescItemID is the schema descriptor for item_id field.
	assessmentattemptDescItemID := assessmentattemptFields[2].Descriptor()
	// assessmentattempt.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	assessmentattempt.ItemIDValidator = assessmentattemptDescItemID.Validators[0].(func(string) error)
	// assessmentattemptDescStandardID is the schema descriptor for standard_id field.
	assessmentattemptDescStandardID := assessmentattemptFields[3].Descriptor()
	// assessmentattempt.StandardIDValidator is a validator for the "standard_id" field. It is called by the builders before save.
	assessmentattempt.StandardIDValidator = assessmentattemptDescStandardID.Validators[0].(func(string) error)
	// assessmentattemptDescTimeSpentSeconds is the schema descriptor for time_spent_seconds field.
	assessmentattemptDescTimeSpentSeconds := assessmentattemptFields[10].Descriptor()
	// assessmentattempt.DefaultTimeSpentSeconds holds the default value on creation for the time_spent_seconds field.
	assessmentattempt.DefaultTimeSpentSeconds = assessmentattemptDescTimeSpentSeconds.Default.(int)
	// assessmentattemptDescTimestamp is the schema descriptor for timestamp field.
	assessmentattemptDescTimestamp := assessmentattemptFields[11].Descriptor()
	// assessmentattempt.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentattempt.DefaultTimestamp = assessmentattemptDescTimestamp.Default.(func() time.Time)
	// assessmentattemptDescID is the schema descriptor for id field.
	assessmentattemptDescID := assessmentattemptFields[0].Descriptor()
	// assessmentattempt.IDValidator is a validator for the "id" field. It is called by the builders before save.
	assessmentattempt.IDValidator = assessmentattemptDescID.Validators[0].(func(string) error)
	assessmentitemFields := schema.AssessmentItem{}.Fields()
	_ = assessmentitemFields
	// assessmentitemDescStandardID is the schema descriptor for standard_id field.
	assessmentitemDescStandardID := assessmentitemFields[1].Descriptor()
	// assessmentitem.StandardIDValidator is a validator for the "standard_id" field. It is called by the builders before save.
	assessmentitem.StandardIDValidator = assessmentitemDescStandardID.Validators[0].(func(string) error)
	// assessmentitemDescItemType is the schema descriptor for item_type field.
	assessmentitemDescItemType := assessmentitemFields[2].Descriptor()
	// assessmentitem.ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	assessmentitem.ItemTypeValidator = assessmentitemDescItemType.Validators[0].(func(string) error)
	// assessmentitemDescDifficulty is the schema descriptor for difficulty field.
	assessmentitemDescDifficulty := assessmentitemFields[3].Descriptor()
	// assessmentitem.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	assessmentitem.DifficultyValidator = assessmentitemDescDifficulty.Validators[0].(func(string) error)
	// assessmentitemDescDok is the schema descriptor for dok field.
	assessmentitemDescDok := assessmentitemFields[4].Descriptor()
	// assessmentitem.DokValidator is a validator for the "dok" field. It is called by the builders before save.
	assessmentitem.DokValidator = func() func(int) error {
		validators := assessmentitemDescDok.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(dok int) error {
			for _, fn := range fns {
				if err := fn(dok); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// assessmentitemDescStem is the schema descriptor for stem field.
	assessmentitemDescStem := assessmentitemFields[5].Descriptor()
	// assessmentitem.StemValidator is a validator for the "stem" field. It is called by the builders before save.
	assessmentitem.StemValidator = assessmentitemDescStem.Validators[0].(func(string) error)
	// assessmentitemDescCreatedAt is the schema descriptor for created_at field.
	assessmentitemDescCreatedAt := assessmentitemFields[7].Descriptor()
	// assessmentitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	assessmentitem.DefaultCreatedAt = assessmentitemDescCreatedAt.Default.(func() time.Time)
	// assessmentitemDescID is the schema descriptor for id field.
	assessmentitemDescID := assessmentitemFields[0].Descriptor()
	// assessmentitem.IDValidator is a validator for the "id" field. It is called by the builders before save.
	assessmentitem.IDValidator = assessmentitemDescID.Validators[0].(func(string) error)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	standardFields := schema.Standard{}.Fields()
	_ = standardFields
	// standardDescCode is the schema descriptor for code field.
	standardDescCode := standardFields[1].Descriptor()
	// standard.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	standard.CodeValidator = standardDescCode.Validators[0].(func(string) error)
	// standardDescSubject is the schema descriptor for subject field.
	standardDescSubject := standardFields[2].Descriptor()
	// standard.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	standard.SubjectValidator = standardDescSubject.Validators[0].(func(string) error)
	// standardDescGrade is the schema descriptor for grade field.
	standardDescGrade := standardFields[3].Descriptor()
	// standard.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	standard.GradeValidator = standardDescGrade.Validators[0].(func(string) error)
	// standardDescStrand is the schema descriptor for strand field.
	standardDescStrand := standardFields[4].Descriptor()
	// standard.StrandValidator is a validator for the "strand" field. It is called by the builders before save.
	standard.StrandValidator = standardDescStrand.Validators[0].(func(string) error)
	// standardDescDescription is the schema descriptor for description field.
	standardDescDescription := standardFields[6].Descriptor()
	// standard.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	standard.DescriptionValidator = standardDescDescription.Validators[0].(func(string) error)
	// standardDescDifficulty is the schema descriptor for difficulty field.
	standardDescDifficulty := standardFields[11].Descriptor()
	// standard.DefaultDifficulty holds the default value on creation for the difficulty field.
	standard.DefaultDifficulty = standardDescDifficulty.Default.(string)
	// standardDescCognitiveComplexity is the schema descriptor for cognitive_complexity field.
	standardDescCognitiveComplexity := standardFields[12].Descriptor()
	// standard.DefaultCognitiveComplexity holds the default value on creation for the cognitive_complexity field.
	standard.DefaultCognitiveComplexity = standardDescCognitiveComplexity.Default.(string)
	// standardDescCreatedAt is the schema descriptor for created_at field.
	standardDescCreatedAt := standardFields[15].Descriptor()
	// standard.DefaultCreatedAt holds the default value on creation for the created_at field.
	standard.DefaultCreatedAt = standardDescCreatedAt.Default.(func() time.Time)
	// standardDescUpdatedAt is the schema descriptor for updated_at field.
	standardDescUpdatedAt := standardFields[16].Descriptor()
	// standard.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	standard.DefaultUpdatedAt = standardDescUpdatedAt.Default.(func() time.Time)
	// standard.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	standard.UpdateDefaultUpdatedAt = standardDescUpdatedAt.UpdateDefault.(func() time.Time)
	// standardDescID is the schema descriptor for id field.
	standardDescID := standardFields[0].Descriptor()
	// standard.IDValidator is a validator for the "id" field. It is called by the builders before save.
	standard.IDValidator = standardDescID.Validators[0].(func(string) error)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescGrade is the schema descriptor for grade field.
	userDescGrade := userFields[2].Descriptor()
	// user.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	user.GradeValidator = userDescGrade.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.IDValidator is a validator for the "id" field. It is called by the builders before save.
	user.IDValidator = userDescID.Validators[0].(func(string) error)
}
