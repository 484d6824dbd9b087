// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisStatus is the predicate function for analysisstatus builders.
type AnalysisStatus func(*sql.Selector)

// AnalyzedChunk is the predicate function for analyzedchunk builders.
type AnalyzedChunk func(*sql.Selector)

// EmailMapping is the predicate function for emailmapping builders.
type EmailMapping func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// TeamParticipation is the predicate function for teamparticipation builders.
type TeamParticipation func(*sql.Selector)
