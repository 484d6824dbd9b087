// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fairlens/fairlens/ent/analysisstatus"
	"github.com/fairlens/fairlens/ent/analyzedchunk"
	"github.com/fairlens/fairlens/ent/event"
	"github.com/fairlens/fairlens/ent/schema"
	"github.com/fairlens/fairlens/ent/teamparticipation"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisstatusFields := schema.AnalysisStatus{}.Fields()
	_ = analysisstatusFields
	// analysisstatusDescTotalTeams is the schema descriptor for total_teams field.
	analysisstatusDescTotalTeams := analysisstatusFields[2].Descriptor()
	// analysisstatus.DefaultTotalTeams holds the default value on creation for the total_teams field.
	analysisstatus.DefaultTotalTeams = analysisstatusDescTotalTeams.Default.(int)
	// analysisstatusDescProcessedTeams is the schema descriptor for processed_teams field.
	analysisstatusDescProcessedTeams := analysisstatusFields[3].Descriptor()
	// analysisstatus.DefaultProcessedTeams holds the default value on creation for the processed_teams field.
	analysisstatus.DefaultProcessedTeams = analysisstatusDescProcessedTeams.Default.(int)
	// analysisstatusDescLastUpdatedAt is the schema descriptor for last_updated_at field.
	analysisstatusDescLastUpdatedAt := analysisstatusFields[7].Descriptor()
	// analysisstatus.DefaultLastUpdatedAt holds the default value on creation for the last_updated_at field.
	analysisstatus.DefaultLastUpdatedAt = analysisstatusDescLastUpdatedAt.Default.(func() time.Time)
	// analysisstatus.UpdateDefaultLastUpdatedAt holds the default value on update for the last_updated_at field.
	analysisstatus.UpdateDefaultLastUpdatedAt = analysisstatusDescLastUpdatedAt.UpdateDefault.(func() time.Time)
	analyzedchunkFields := schema.AnalyzedChunk{}.Fields()
	_ = analyzedchunkFields
	// analyzedchunkDescChunkIndex is the schema descriptor for chunk_index field.
	analyzedchunkDescChunkIndex := analyzedchunkFields[2].Descriptor()
	// analyzedchunk.DefaultChunkIndex holds the default value on creation for the chunk_index field.
	analyzedchunk.DefaultChunkIndex = analyzedchunkDescChunkIndex.Default.(int)
	// analyzedchunkDescTotalChunks is the schema descriptor for total_chunks field.
	analyzedchunkDescTotalChunks := analyzedchunkFields[3].Descriptor()
	// analyzedchunk.DefaultTotalChunks holds the default value on creation for the total_chunks field.
	analyzedchunk.DefaultTotalChunks = analyzedchunkDescTotalChunks.Default.(int)
	// analyzedchunkDescLinesAdded is the schema descriptor for lines_added field.
	analyzedchunkDescLinesAdded := analyzedchunkFields[8].Descriptor()
	// analyzedchunk.DefaultLinesAdded holds the default value on creation for the lines_added field.
	analyzedchunk.DefaultLinesAdded = analyzedchunkDescLinesAdded.Default.(int)
	// analyzedchunkDescLinesDeleted is the schema descriptor for lines_deleted field.
	analyzedchunkDescLinesDeleted := analyzedchunkFields[9].Descriptor()
	// analyzedchunk.DefaultLinesDeleted holds the default value on creation for the lines_deleted field.
	analyzedchunk.DefaultLinesDeleted = analyzedchunkDescLinesDeleted.Default.(int)
	// analyzedchunkDescIsBundled is the schema descriptor for is_bundled field.
	analyzedchunkDescIsBundled := analyzedchunkFields[10].Descriptor()
	// analyzedchunk.DefaultIsBundled holds the default value on creation for the is_bundled field.
	analyzedchunk.DefaultIsBundled = analyzedchunkDescIsBundled.Default.(bool)
	// analyzedchunkDescIsError is the schema descriptor for is_error field.
	analyzedchunkDescIsError := analyzedchunkFields[18].Descriptor()
	// analyzedchunk.DefaultIsError holds the default value on creation for the is_error field.
	analyzedchunk.DefaultIsError = analyzedchunkDescIsError.Default.(bool)
	// analyzedchunkDescIsExternalContributor is the schema descriptor for is_external_contributor field.
	analyzedchunkDescIsExternalContributor := analyzedchunkFields[19].Descriptor()
	// analyzedchunk.DefaultIsExternalContributor holds the default value on creation for the is_external_contributor field.
	analyzedchunk.DefaultIsExternalContributor = analyzedchunkDescIsExternalContributor.Default.(bool)
	// analyzedchunkDescPromptTokens is the schema descriptor for prompt_tokens field.
	analyzedchunkDescPromptTokens := analyzedchunkFields[21].Descriptor()
	// analyzedchunk.DefaultPromptTokens holds the default value on creation for the prompt_tokens field.
	analyzedchunk.DefaultPromptTokens = analyzedchunkDescPromptTokens.Default.(int)
	// analyzedchunkDescCompletionTokens is the schema descriptor for completion_tokens field.
	analyzedchunkDescCompletionTokens := analyzedchunkFields[22].Descriptor()
	// analyzedchunk.DefaultCompletionTokens holds the default value on creation for the completion_tokens field.
	analyzedchunk.DefaultCompletionTokens = analyzedchunkDescCompletionTokens.Default.(int)
	// analyzedchunkDescTotalTokens is the schema descriptor for total_tokens field.
	analyzedchunkDescTotalTokens := analyzedchunkFields[23].Descriptor()
	// analyzedchunk.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	analyzedchunk.DefaultTotalTokens = analyzedchunkDescTotalTokens.Default.(int)
	// analyzedchunkDescUsageAvailable is the schema descriptor for usage_available field.
	analyzedchunkDescUsageAvailable := analyzedchunkFields[24].Descriptor()
	// analyzedchunk.DefaultUsageAvailable holds the default value on creation for the usage_available field.
	analyzedchunk.DefaultUsageAvailable = analyzedchunkDescUsageAvailable.Default.(bool)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	teamparticipationFields := schema.TeamParticipation{}.Fields()
	_ = teamparticipationFields
	// teamparticipationDescIsSuspicious is the schema descriptor for is_suspicious field.
	teamparticipationDescIsSuspicious := teamparticipationFields[6].Descriptor()
	// teamparticipation.DefaultIsSuspicious holds the default value on creation for the is_suspicious field.
	teamparticipation.DefaultIsSuspicious = teamparticipationDescIsSuspicious.Default.(bool)
}
