// Code generated by ent, DO NOT EDIT.

package analyzedchunk

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fairlens/fairlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldID, id))
}

// ParticipationID applies equality check predicate on the "participation_id" field. It's identical to ParticipationIDEQ.
func ParticipationID(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldParticipationID, v))
}

// Sha applies equality check predicate on the "sha" field. It's identical to ShaEQ.
func Sha(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldSha, v))
}

// ChunkIndex applies equality check predicate on the "chunk_index" field. It's identical to ChunkIndexEQ.
func ChunkIndex(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldChunkIndex, v))
}

// TotalChunks applies equality check predicate on the "total_chunks" field. It's identical to TotalChunksEQ.
func TotalChunks(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldTotalChunks, v))
}

// AuthorID applies equality check predicate on the "author_id" field. It's identical to AuthorIDEQ.
func AuthorID(v int64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldAuthorID, v))
}

// AuthorEmail applies equality check predicate on the "author_email" field. It's identical to AuthorEmailEQ.
func AuthorEmail(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldAuthorEmail, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldMessage, v))
}

// CommittedAt applies equality check predicate on the "committed_at" field. It's identical to CommittedAtEQ.
func CommittedAt(v time.Time) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldCommittedAt, v))
}

// LinesAdded applies equality check predicate on the "lines_added" field. It's identical to LinesAddedEQ.
func LinesAdded(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldLinesAdded, v))
}

// LinesDeleted applies equality check predicate on the "lines_deleted" field. It's identical to LinesDeletedEQ.
func LinesDeleted(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldLinesDeleted, v))
}

// IsBundled applies equality check predicate on the "is_bundled" field. It's identical to IsBundledEQ.
func IsBundled(v bool) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldIsBundled, v))
}

// EffortScore applies equality check predicate on the "effort_score" field. It's identical to EffortScoreEQ.
func EffortScore(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldEffortScore, v))
}

// Complexity applies equality check predicate on the "complexity" field. It's identical to ComplexityEQ.
func Complexity(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldComplexity, v))
}

// Novelty applies equality check predicate on the "novelty" field. It's identical to NoveltyEQ.
func Novelty(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldNovelty, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldConfidence, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldReasoning, v))
}

// IsError applies equality check predicate on the "is_error" field. It's identical to IsErrorEQ.
func IsError(v bool) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldIsError, v))
}

// IsExternalContributor applies equality check predicate on the "is_external_contributor" field. It's identical to IsExternalContributorEQ.
func IsExternalContributor(v bool) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldIsExternalContributor, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldModel, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldCompletionTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldTotalTokens, v))
}

// UsageAvailable applies equality check predicate on the "usage_available" field. It's identical to UsageAvailableEQ.
func UsageAvailable(v bool) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldUsageAvailable, v))
}

// ParticipationIDEQ applies the EQ predicate on the "participation_id" field.
func ParticipationIDEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldParticipationID, v))
}

// ParticipationIDNEQ applies the NEQ predicate on the "participation_id" field.
func ParticipationIDNEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldParticipationID, v))
}

// ParticipationIDIn applies the In predicate on the "participation_id" field.
func ParticipationIDIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldParticipationID, vs...))
}

// ParticipationIDNotIn applies the NotIn predicate on the "participation_id" field.
func ParticipationIDNotIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldParticipationID, vs...))
}

// ShaEQ applies the EQ predicate on the "sha" field.
func ShaEQ(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldSha, v))
}

// ShaNEQ applies the NEQ predicate on the "sha" field.
func ShaNEQ(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldSha, v))
}

// ShaIn applies the In predicate on the "sha" field.
func ShaIn(vs ...string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldSha, vs...))
}

// ShaNotIn applies the NotIn predicate on the "sha" field.
func ShaNotIn(vs ...string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldSha, vs...))
}

// ShaGT applies the GT predicate on the "sha" field.
func ShaGT(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldSha, v))
}

// ShaGTE applies the GTE predicate on the "sha" field.
func ShaGTE(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldSha, v))
}

// ShaLT applies the LT predicate on the "sha" field.
func ShaLT(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldSha, v))
}

// ShaLTE applies the LTE predicate on the "sha" field.
func ShaLTE(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldSha, v))
}

// ShaContains applies the Contains predicate on the "sha" field.
func ShaContains(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldContains(FieldSha, v))
}

// ShaHasPrefix applies the HasPrefix predicate on the "sha" field.
func ShaHasPrefix(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldHasPrefix(FieldSha, v))
}

// ShaHasSuffix applies the HasSuffix predicate on the "sha" field.
func ShaHasSuffix(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldHasSuffix(FieldSha, v))
}

// ShaEqualFold applies the EqualFold predicate on the "sha" field.
func ShaEqualFold(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEqualFold(FieldSha, v))
}

// ShaContainsFold applies the ContainsFold predicate on the "sha" field.
func ShaContainsFold(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldContainsFold(FieldSha, v))
}

// ChunkIndexEQ applies the EQ predicate on the "chunk_index" field.
func ChunkIndexEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldChunkIndex, v))
}

// ChunkIndexNEQ applies the NEQ predicate on the "chunk_index" field.
func ChunkIndexNEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldChunkIndex, v))
}

// ChunkIndexIn applies the In predicate on the "chunk_index" field.
func ChunkIndexIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldChunkIndex, vs...))
}

// ChunkIndexNotIn applies the NotIn predicate on the "chunk_index" field.
func ChunkIndexNotIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldChunkIndex, vs...))
}

// ChunkIndexGT applies the GT predicate on the "chunk_index" field.
func ChunkIndexGT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldChunkIndex, v))
}

// ChunkIndexGTE applies the GTE predicate on the "chunk_index" field.
func ChunkIndexGTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldChunkIndex, v))
}

// ChunkIndexLT applies the LT predicate on the "chunk_index" field.
func ChunkIndexLT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldChunkIndex, v))
}

// ChunkIndexLTE applies the LTE predicate on the "chunk_index" field.
func ChunkIndexLTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldChunkIndex, v))
}

// TotalChunksEQ applies the EQ predicate on the "total_chunks" field.
func TotalChunksEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldTotalChunks, v))
}

// TotalChunksNEQ applies the NEQ predicate on the "total_chunks" field.
func TotalChunksNEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldTotalChunks, v))
}

// TotalChunksIn applies the In predicate on the "total_chunks" field.
func TotalChunksIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldTotalChunks, vs...))
}

// TotalChunksNotIn applies the NotIn predicate on the "total_chunks" field.
func TotalChunksNotIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldTotalChunks, vs...))
}

// TotalChunksGT applies the GT predicate on the "total_chunks" field.
func TotalChunksGT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldTotalChunks, v))
}

// TotalChunksGTE applies the GTE predicate on the "total_chunks" field.
func TotalChunksGTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldTotalChunks, v))
}

// TotalChunksLT applies the LT predicate on the "total_chunks" field.
func TotalChunksLT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldTotalChunks, v))
}

// TotalChunksLTE applies the LTE predicate on the "total_chunks" field.
func TotalChunksLTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldTotalChunks, v))
}

// AuthorIDEQ applies the EQ predicate on the "author_id" field.
func AuthorIDEQ(v int64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldAuthorID, v))
}

// AuthorIDNEQ applies the NEQ predicate on the "author_id" field.
func AuthorIDNEQ(v int64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldAuthorID, v))
}

// AuthorIDIn applies the In predicate on the "author_id" field.
func AuthorIDIn(vs ...int64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldAuthorID, vs...))
}

// AuthorIDNotIn applies the NotIn predicate on the "author_id" field.
func AuthorIDNotIn(vs ...int64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldAuthorID, vs...))
}

// AuthorIDGT applies the GT predicate on the "author_id" field.
func AuthorIDGT(v int64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldAuthorID, v))
}

// AuthorIDGTE applies the GTE predicate on the "author_id" field.
func AuthorIDGTE(v int64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldAuthorID, v))
}

// AuthorIDLT applies the LT predicate on the "author_id" field.
func AuthorIDLT(v int64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldAuthorID, v))
}

// AuthorIDLTE applies the LTE predicate on the "author_id" field.
func AuthorIDLTE(v int64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldAuthorID, v))
}

// AuthorIDIsNil applies the IsNil predicate on the "author_id" field.
func AuthorIDIsNil() predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIsNull(FieldAuthorID))
}

// AuthorIDNotNil applies the NotNil predicate on the "author_id" field.
func AuthorIDNotNil() predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotNull(FieldAuthorID))
}

// AuthorEmailEQ applies the EQ predicate on the "author_email" field.
func AuthorEmailEQ(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldAuthorEmail, v))
}

// AuthorEmailNEQ applies the NEQ predicate on the "author_email" field.
func AuthorEmailNEQ(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldAuthorEmail, v))
}

// AuthorEmailIn applies the In predicate on the "author_email" field.
func AuthorEmailIn(vs ...string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldAuthorEmail, vs...))
}

// AuthorEmailNotIn applies the NotIn predicate on the "author_email" field.
func AuthorEmailNotIn(vs ...string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldAuthorEmail, vs...))
}

// AuthorEmailGT applies the GT predicate on the "author_email" field.
func AuthorEmailGT(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldAuthorEmail, v))
}

// AuthorEmailGTE applies the GTE predicate on the "author_email" field.
func AuthorEmailGTE(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldAuthorEmail, v))
}

// AuthorEmailLT applies the LT predicate on the "author_email" field.
func AuthorEmailLT(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldAuthorEmail, v))
}

// AuthorEmailLTE applies the LTE predicate on the "author_email" field.
func AuthorEmailLTE(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldAuthorEmail, v))
}

// AuthorEmailContains applies the Contains predicate on the "author_email" field.
func AuthorEmailContains(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldContains(FieldAuthorEmail, v))
}

// AuthorEmailHasPrefix applies the HasPrefix predicate on the "author_email" field.
func AuthorEmailHasPrefix(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldHasPrefix(FieldAuthorEmail, v))
}

// AuthorEmailHasSuffix applies the HasSuffix predicate on the "author_email" field.
func AuthorEmailHasSuffix(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldHasSuffix(FieldAuthorEmail, v))
}

// AuthorEmailEqualFold applies the EqualFold predicate on the "author_email" field.
func AuthorEmailEqualFold(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEqualFold(FieldAuthorEmail, v))
}

// AuthorEmailContainsFold applies the ContainsFold predicate on the "author_email" field.
func AuthorEmailContainsFold(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldContainsFold(FieldAuthorEmail, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldContainsFold(FieldMessage, v))
}

// CommittedAtEQ applies the EQ predicate on the "committed_at" field.
func CommittedAtEQ(v time.Time) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldCommittedAt, v))
}

// CommittedAtNEQ applies the NEQ predicate on the "committed_at" field.
func CommittedAtNEQ(v time.Time) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldCommittedAt, v))
}

// CommittedAtIn applies the In predicate on the "committed_at" field.
func CommittedAtIn(vs ...time.Time) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldCommittedAt, vs...))
}

// CommittedAtNotIn applies the NotIn predicate on the "committed_at" field.
func CommittedAtNotIn(vs ...time.Time) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldCommittedAt, vs...))
}

// CommittedAtGT applies the GT predicate on the "committed_at" field.
func CommittedAtGT(v time.Time) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldCommittedAt, v))
}

// CommittedAtGTE applies the GTE predicate on the "committed_at" field.
func CommittedAtGTE(v time.Time) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldCommittedAt, v))
}

// CommittedAtLT applies the LT predicate on the "committed_at" field.
func CommittedAtLT(v time.Time) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldCommittedAt, v))
}

// CommittedAtLTE applies the LTE predicate on the "committed_at" field.
func CommittedAtLTE(v time.Time) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldCommittedAt, v))
}

// LinesAddedEQ applies the EQ predicate on the "lines_added" field.
func LinesAddedEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldLinesAdded, v))
}

// LinesAddedNEQ applies the NEQ predicate on the "lines_added" field.
func LinesAddedNEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldLinesAdded, v))
}

// LinesAddedIn applies the In predicate on the "lines_added" field.
func LinesAddedIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldLinesAdded, vs...))
}

// LinesAddedNotIn applies the NotIn predicate on the "lines_added" field.
func LinesAddedNotIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldLinesAdded, vs...))
}

// LinesAddedGT applies the GT predicate on the "lines_added" field.
func LinesAddedGT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldLinesAdded, v))
}

// LinesAddedGTE applies the GTE predicate on the "lines_added" field.
func LinesAddedGTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldLinesAdded, v))
}

// LinesAddedLT applies the LT predicate on the "lines_added" field.
func LinesAddedLT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldLinesAdded, v))
}

// LinesAddedLTE applies the LTE predicate on the "lines_added" field.
func LinesAddedLTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldLinesAdded, v))
}

// LinesDeletedEQ applies the EQ predicate on the "lines_deleted" field.
func LinesDeletedEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldLinesDeleted, v))
}

// LinesDeletedNEQ applies the NEQ predicate on the "lines_deleted" field.
func LinesDeletedNEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldLinesDeleted, v))
}

// LinesDeletedIn applies the In predicate on the "lines_deleted" field.
func LinesDeletedIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldLinesDeleted, vs...))
}

// LinesDeletedNotIn applies the NotIn predicate on the "lines_deleted" field.
func LinesDeletedNotIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldLinesDeleted, vs...))
}

// LinesDeletedGT applies the GT predicate on the "lines_deleted" field.
func LinesDeletedGT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldLinesDeleted, v))
}

// LinesDeletedGTE applies the GTE predicate on the "lines_deleted" field.
func LinesDeletedGTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldLinesDeleted, v))
}

// LinesDeletedLT applies the LT predicate on the "lines_deleted" field.
func LinesDeletedLT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldLinesDeleted, v))
}

// LinesDeletedLTE applies the LTE predicate on the "lines_deleted" field.
func LinesDeletedLTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldLinesDeleted, v))
}

// IsBundledEQ applies the EQ predicate on the "is_bundled" field.
func IsBundledEQ(v bool) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldIsBundled, v))
}

// IsBundledNEQ applies the NEQ predicate on the "is_bundled" field.
func IsBundledNEQ(v bool) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldIsBundled, v))
}

// BundledShasIsNil applies the IsNil predicate on the "bundled_shas" field.
func BundledShasIsNil() predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIsNull(FieldBundledShas))
}

// BundledShasNotNil applies the NotNil predicate on the "bundled_shas" field.
func BundledShasNotNil() predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotNull(FieldBundledShas))
}

// EffortScoreEQ applies the EQ predicate on the "effort_score" field.
func EffortScoreEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldEffortScore, v))
}

// EffortScoreNEQ applies the NEQ predicate on the "effort_score" field.
func EffortScoreNEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldEffortScore, v))
}

// EffortScoreIn applies the In predicate on the "effort_score" field.
func EffortScoreIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldEffortScore, vs...))
}

// EffortScoreNotIn applies the NotIn predicate on the "effort_score" field.
func EffortScoreNotIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldEffortScore, vs...))
}

// EffortScoreGT applies the GT predicate on the "effort_score" field.
func EffortScoreGT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldEffortScore, v))
}

// EffortScoreGTE applies the GTE predicate on the "effort_score" field.
func EffortScoreGTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldEffortScore, v))
}

// EffortScoreLT applies the LT predicate on the "effort_score" field.
func EffortScoreLT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldEffortScore, v))
}

// EffortScoreLTE applies the LTE predicate on the "effort_score" field.
func EffortScoreLTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldEffortScore, v))
}

// ComplexityEQ applies the EQ predicate on the "complexity" field.
func ComplexityEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldComplexity, v))
}

// ComplexityNEQ applies the NEQ predicate on the "complexity" field.
func ComplexityNEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldComplexity, v))
}

// ComplexityIn applies the In predicate on the "complexity" field.
func ComplexityIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldComplexity, vs...))
}

// ComplexityNotIn applies the NotIn predicate on the "complexity" field.
func ComplexityNotIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldComplexity, vs...))
}

// ComplexityGT applies the GT predicate on the "complexity" field.
func ComplexityGT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldComplexity, v))
}

// ComplexityGTE applies the GTE predicate on the "complexity" field.
func ComplexityGTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldComplexity, v))
}

// ComplexityLT applies the LT predicate on the "complexity" field.
func ComplexityLT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldComplexity, v))
}

// ComplexityLTE applies the LTE predicate on the "complexity" field.
func ComplexityLTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldComplexity, v))
}

// NoveltyEQ applies the EQ predicate on the "novelty" field.
func NoveltyEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldNovelty, v))
}

// NoveltyNEQ applies the NEQ predicate on the "novelty" field.
func NoveltyNEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldNovelty, v))
}

// NoveltyIn applies the In predicate on the "novelty" field.
func NoveltyIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldNovelty, vs...))
}

// NoveltyNotIn applies the NotIn predicate on the "novelty" field.
func NoveltyNotIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldNovelty, vs...))
}

// NoveltyGT applies the GT predicate on the "novelty" field.
func NoveltyGT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldNovelty, v))
}

// NoveltyGTE applies the GTE predicate on the "novelty" field.
func NoveltyGTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldNovelty, v))
}

// NoveltyLT applies the LT predicate on the "novelty" field.
func NoveltyLT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldNovelty, v))
}

// NoveltyLTE applies the LTE predicate on the "novelty" field.
func NoveltyLTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldNovelty, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldContainsFold(FieldLabel, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldConfidence, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldContainsFold(FieldReasoning, v))
}

// IsErrorEQ applies the EQ predicate on the "is_error" field.
func IsErrorEQ(v bool) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldIsError, v))
}

// IsErrorNEQ applies the NEQ predicate on the "is_error" field.
func IsErrorNEQ(v bool) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldIsError, v))
}

// IsExternalContributorEQ applies the EQ predicate on the "is_external_contributor" field.
func IsExternalContributorEQ(v bool) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldIsExternalContributor, v))
}

// IsExternalContributorNEQ applies the NEQ predicate on the "is_external_contributor" field.
func IsExternalContributorNEQ(v bool) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldIsExternalContributor, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldContainsFold(FieldModel, v))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldPromptTokens, v))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldCompletionTokens, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldLTE(FieldTotalTokens, v))
}

// UsageAvailableEQ applies the EQ predicate on the "usage_available" field.
func UsageAvailableEQ(v bool) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldEQ(FieldUsageAvailable, v))
}

// UsageAvailableNEQ applies the NEQ predicate on the "usage_available" field.
func UsageAvailableNEQ(v bool) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.FieldNEQ(FieldUsageAvailable, v))
}

// HasParticipation applies the HasEdge predicate on the "participation" edge.
func HasParticipation() predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParticipationTable, ParticipationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipationWith applies the HasEdge predicate on the "participation" edge with a given conditions (other predicates).
func HasParticipationWith(preds ...predicate.TeamParticipation) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(func(s *sql.Selector) {
		step := newParticipationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalyzedChunk) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalyzedChunk) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalyzedChunk) predicate.AnalyzedChunk {
	return predicate.AnalyzedChunk(sql.NotPredicates(p))
}
