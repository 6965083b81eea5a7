// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentState is the predicate function for agentstate builders.
type AgentState func(*sql.Selector)

// AlertBatch is the predicate function for alertbatch builders.
type AlertBatch func(*sql.Selector)

// AlertDelivery is the predicate function for alertdelivery builders.
type AlertDelivery func(*sql.Selector)

// ContentDedup is the predicate function for contentdedup builders.
type ContentDedup func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskRecovery is the predicate function for taskrecovery builders.
type TaskRecovery func(*sql.Selector)

// Workflow is the predicate function for workflow builders.
type Workflow func(*sql.Selector)
