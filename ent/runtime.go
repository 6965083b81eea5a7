// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/redscout/redscout/ent/agentstate"
	"github.com/redscout/redscout/ent/alertbatch"
	"github.com/redscout/redscout/ent/alertdelivery"
	"github.com/redscout/redscout/ent/contentdedup"
	"github.com/redscout/redscout/ent/schema"
	"github.com/redscout/redscout/ent/task"
	"github.com/redscout/redscout/ent/taskrecovery"
	"github.com/redscout/redscout/ent/workflow"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentstateFields := schema.AgentState{}.Fields()
	_ = agentstateFields
	// agentstateDescHeartbeatAt is the schema descriptor for heartbeat_at field.
	agentstateDescHeartbeatAt := agentstateFields[6].Descriptor()
	// agentstate.DefaultHeartbeatAt holds the default value on creation for the heartbeat_at field.
	agentstate.DefaultHeartbeatAt = agentstateDescHeartbeatAt.Default.(func() time.Time)
	// agentstateDescErrorCount is the schema descriptor for error_count field.
	agentstateDescErrorCount := agentstateFields[7].Descriptor()
	// agentstate.DefaultErrorCount holds the default value on creation for the error_count field.
	agentstate.DefaultErrorCount = agentstateDescErrorCount.Default.(int)
	// agentstateDescTasksCompleted is the schema descriptor for tasks_completed field.
	agentstateDescTasksCompleted := agentstateFields[9].Descriptor()
	// agentstate.DefaultTasksCompleted holds the default value on creation for the tasks_completed field.
	agentstate.DefaultTasksCompleted = agentstateDescTasksCompleted.Default.(int)
	// agentstateDescTasksFailed is the schema descriptor for tasks_failed field.
	agentstateDescTasksFailed := agentstateFields[10].Descriptor()
	// agentstate.DefaultTasksFailed holds the default value on creation for the tasks_failed field.
	agentstate.DefaultTasksFailed = agentstateDescTasksFailed.Default.(int)
	// agentstateDescCreatedAt is the schema descriptor for created_at field.
	agentstateDescCreatedAt := agentstateFields[12].Descriptor()
	// agentstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentstate.DefaultCreatedAt = agentstateDescCreatedAt.Default.(func() time.Time)
	// agentstateDescLastUpdated is the schema descriptor for last_updated field.
	agentstateDescLastUpdated := agentstateFields[13].Descriptor()
	// agentstate.DefaultLastUpdated holds the default value on creation for the last_updated field.
	agentstate.DefaultLastUpdated = agentstateDescLastUpdated.Default.(func() time.Time)
	// agentstate.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	agentstate.UpdateDefaultLastUpdated = agentstateDescLastUpdated.UpdateDefault.(func() time.Time)
	alertbatchFields := schema.AlertBatch{}.Fields()
	_ = alertbatchFields
	// alertbatchDescTotalItems is the schema descriptor for total_items field.
	alertbatchDescTotalItems := alertbatchFields[3].Descriptor()
	// alertbatch.DefaultTotalItems holds the default value on creation for the total_items field.
	alertbatch.DefaultTotalItems = alertbatchDescTotalItems.Default.(int)
	// alertbatchDescPriority is the schema descriptor for priority field.
	alertbatchDescPriority := alertbatchFields[4].Descriptor()
	// alertbatch.DefaultPriority holds the default value on creation for the priority field.
	alertbatch.DefaultPriority = alertbatchDescPriority.Default.(int)
	// alertbatchDescDeliveryAttempts is the schema descriptor for delivery_attempts field.
	alertbatchDescDeliveryAttempts := alertbatchFields[9].Descriptor()
	// alertbatch.DefaultDeliveryAttempts holds the default value on creation for the delivery_attempts field.
	alertbatch.DefaultDeliveryAttempts = alertbatchDescDeliveryAttempts.Default.(int)
	// alertbatchDescCreatedAt is the schema descriptor for created_at field.
	alertbatchDescCreatedAt := alertbatchFields[11].Descriptor()
	// alertbatch.DefaultCreatedAt holds the default value on creation for the created_at field.
	alertbatch.DefaultCreatedAt = alertbatchDescCreatedAt.Default.(func() time.Time)
	// alertbatchDescUpdatedAt is the schema descriptor for updated_at field.
	alertbatchDescUpdatedAt := alertbatchFields[12].Descriptor()
	// alertbatch.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	alertbatch.DefaultUpdatedAt = alertbatchDescUpdatedAt.Default.(func() time.Time)
	// alertbatch.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	alertbatch.UpdateDefaultUpdatedAt = alertbatchDescUpdatedAt.UpdateDefault.(func() time.Time)
	alertdeliveryFields := schema.AlertDelivery{}.Fields()
	_ = alertdeliveryFields
	// alertdeliveryDescRecipient is the schema descriptor for recipient field.
	alertdeliveryDescRecipient := alertdeliveryFields[4].Descriptor()
	// alertdelivery.DefaultRecipient holds the default value on creation for the recipient field.
	alertdelivery.DefaultRecipient = alertdeliveryDescRecipient.Default.(string)
	// alertdeliveryDescRetryCount is the schema descriptor for retry_count field.
	alertdeliveryDescRetryCount := alertdeliveryFields[11].Descriptor()
	// alertdelivery.DefaultRetryCount holds the default value on creation for the retry_count field.
	alertdelivery.DefaultRetryCount = alertdeliveryDescRetryCount.Default.(int)
	// alertdeliveryDescCreatedAt is the schema descriptor for created_at field.
	alertdeliveryDescCreatedAt := alertdeliveryFields[12].Descriptor()
	// alertdelivery.DefaultCreatedAt holds the default value on creation for the created_at field.
	alertdelivery.DefaultCreatedAt = alertdeliveryDescCreatedAt.Default.(func() time.Time)
	contentdedupFields := schema.ContentDedup{}.Fields()
	_ = contentdedupFields
	// contentdedupDescFirstSeenAt is the schema descriptor for first_seen_at field.
	contentdedupDescFirstSeenAt := contentdedupFields[5].Descriptor()
	// contentdedup.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	contentdedup.DefaultFirstSeenAt = contentdedupDescFirstSeenAt.Default.(func() time.Time)
	// contentdedupDescWorkflowID is the schema descriptor for workflow_id field.
	contentdedupDescWorkflowID := contentdedupFields[8].Descriptor()
	// contentdedup.DefaultWorkflowID holds the default value on creation for the workflow_id field.
	contentdedup.DefaultWorkflowID = contentdedupDescWorkflowID.Default.(string)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescWorkflowID is the schema descriptor for workflow_id field.
	taskDescWorkflowID := taskFields[5].Descriptor()
	// task.DefaultWorkflowID holds the default value on creation for the workflow_id field.
	task.DefaultWorkflowID = taskDescWorkflowID.Default.(string)
	// taskDescPriority is the schema descriptor for priority field.
	taskDescPriority := taskFields[8].Descriptor()
	// task.DefaultPriority holds the default value on creation for the priority field.
	task.DefaultPriority = taskDescPriority.Default.(int)
	// task.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	task.PriorityValidator = func() func(int) error {
		validators := taskDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescRetryCount is the schema descriptor for retry_count field.
	taskDescRetryCount := taskFields[10].Descriptor()
	// task.DefaultRetryCount holds the default value on creation for the retry_count field.
	task.DefaultRetryCount = taskDescRetryCount.Default.(int)
	// taskDescMaxRetries is the schema descriptor for max_retries field.
	taskDescMaxRetries := taskFields[11].Descriptor()
	// task.DefaultMaxRetries holds the default value on creation for the max_retries field.
	task.DefaultMaxRetries = taskDescMaxRetries.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[20].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[21].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskrecoveryFields := schema.TaskRecovery{}.Fields()
	_ = taskrecoveryFields
	// taskrecoveryDescRecoveryAttempt is the schema descriptor for recovery_attempt field.
	taskrecoveryDescRecoveryAttempt := taskrecoveryFields[4].Descriptor()
	// taskrecovery.DefaultRecoveryAttempt holds the default value on creation for the recovery_attempt field.
	taskrecovery.DefaultRecoveryAttempt = taskrecoveryDescRecoveryAttempt.Default.(int)
	// taskrecoveryDescMaxRecoveryAttempts is the schema descriptor for max_recovery_attempts field.
	taskrecoveryDescMaxRecoveryAttempts := taskrecoveryFields[5].Descriptor()
	// taskrecovery.DefaultMaxRecoveryAttempts holds the default value on creation for the max_recovery_attempts field.
	taskrecovery.DefaultMaxRecoveryAttempts = taskrecoveryDescMaxRecoveryAttempts.Default.(int)
	// taskrecoveryDescCreatedAt is the schema descriptor for created_at field.
	taskrecoveryDescCreatedAt := taskrecoveryFields[11].Descriptor()
	// taskrecovery.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskrecovery.DefaultCreatedAt = taskrecoveryDescCreatedAt.Default.(func() time.Time)
	// taskrecoveryDescUpdatedAt is the schema descriptor for updated_at field.
	taskrecoveryDescUpdatedAt := taskrecoveryFields[12].Descriptor()
	// taskrecovery.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	taskrecovery.DefaultUpdatedAt = taskrecoveryDescUpdatedAt.Default.(func() time.Time)
	// taskrecovery.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	taskrecovery.UpdateDefaultUpdatedAt = taskrecoveryDescUpdatedAt.UpdateDefault.(func() time.Time)
	workflowFields := schema.Workflow{}.Fields()
	_ = workflowFields
	// workflowDescRunCount is the schema descriptor for run_count field.
	workflowDescRunCount := workflowFields[7].Descriptor()
	// workflow.DefaultRunCount holds the default value on creation for the run_count field.
	workflow.DefaultRunCount = workflowDescRunCount.Default.(int)
	// workflowDescErrorCount is the schema descriptor for error_count field.
	workflowDescErrorCount := workflowFields[8].Descriptor()
	// workflow.DefaultErrorCount holds the default value on creation for the error_count field.
	workflow.DefaultErrorCount = workflowDescErrorCount.Default.(int)
	// workflowDescPostsProcessed is the schema descriptor for posts_processed field.
	workflowDescPostsProcessed := workflowFields[9].Descriptor()
	// workflow.DefaultPostsProcessed holds the default value on creation for the posts_processed field.
	workflow.DefaultPostsProcessed = workflowDescPostsProcessed.Default.(int)
	// workflowDescCommentsProcessed is the schema descriptor for comments_processed field.
	workflowDescCommentsProcessed := workflowFields[10].Descriptor()
	// workflow.DefaultCommentsProcessed holds the default value on creation for the comments_processed field.
	workflow.DefaultCommentsProcessed = workflowDescCommentsProcessed.Default.(int)
	// workflowDescRelevantItems is the schema descriptor for relevant_items field.
	workflowDescRelevantItems := workflowFields[11].Descriptor()
	// workflow.DefaultRelevantItems holds the default value on creation for the relevant_items field.
	workflow.DefaultRelevantItems = workflowDescRelevantItems.Default.(int)
	// workflowDescSummariesCreated is the schema descriptor for summaries_created field.
	workflowDescSummariesCreated := workflowFields[12].Descriptor()
	// workflow.DefaultSummariesCreated holds the default value on creation for the summaries_created field.
	workflow.DefaultSummariesCreated = workflowDescSummariesCreated.Default.(int)
	// workflowDescAlertsSent is the schema descriptor for alerts_sent field.
	workflowDescAlertsSent := workflowFields[13].Descriptor()
	// workflow.DefaultAlertsSent holds the default value on creation for the alerts_sent field.
	workflow.DefaultAlertsSent = workflowDescAlertsSent.Default.(int)
	// workflowDescStartedAt is the schema descriptor for started_at field.
	workflowDescStartedAt := workflowFields[15].Descriptor()
	// workflow.DefaultStartedAt holds the default value on creation for the started_at field.
	workflow.DefaultStartedAt = workflowDescStartedAt.Default.(func() time.Time)
	// workflowDescCreatedAt is the schema descriptor for created_at field.
	workflowDescCreatedAt := workflowFields[17].Descriptor()
	// workflow.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflow.DefaultCreatedAt = workflowDescCreatedAt.Default.(func() time.Time)
	// workflowDescUpdatedAt is the schema descriptor for updated_at field.
	workflowDescUpdatedAt := workflowFields[18].Descriptor()
	// workflow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflow.DefaultUpdatedAt = workflowDescUpdatedAt.Default.(func() time.Time)
	// workflow.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflow.UpdateDefaultUpdatedAt = workflowDescUpdatedAt.UpdateDefault.(func() time.Time)
}
