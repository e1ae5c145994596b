// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentProfile is the predicate function for agentprofile builders.
type AgentProfile func(*sql.Selector)

// EmailLog is the predicate function for emaillog builders.
type EmailLog func(*sql.Selector)

// LandownerProfile is the predicate function for landownerprofile builders.
type LandownerProfile func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Plot is the predicate function for plot builders.
type Plot func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// VerificationLogEntry is the predicate function for verificationlogentry builders.
type VerificationLogEntry func(*sql.Selector)

// VerificationRecord is the predicate function for verificationrecord builders.
type VerificationRecord func(*sql.Selector)

// VerificationTask is the predicate function for verificationtask builders.
type VerificationTask func(*sql.Selector)
