// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentStatesColumns holds the columns for the "agent_states" table.
	AgentStatesColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "busy", "error", "offline"}, Default: "idle"},
		{Name: "state_data", Type: field.TypeJSON, Nullable: true},
		{Name: "capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "current_task_id", Type: field.TypeString, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "tasks_completed", Type: field.TypeInt, Default: 0},
		{Name: "tasks_failed", Type: field.TypeInt, Default: 0},
		{Name: "avg_execution_time_ms", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// AgentStatesTable holds the schema information for the "agent_states" table.
	AgentStatesTable = &schema.Table{
		Name:       "agent_states",
		Columns:    AgentStatesColumns,
		PrimaryKey: []*schema.Column{AgentStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentstate_status_last_updated",
				Unique:  false,
				Columns: []*schema.Column{AgentStatesColumns[2], AgentStatesColumns[13]},
			},
			{
				Name:    "agentstate_agent_type_status_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{AgentStatesColumns[1], AgentStatesColumns[2], AgentStatesColumns[6]},
			},
		},
	}
	// AlertBatchesColumns holds the columns for the "alert_batches" table.
	AlertBatchesColumns = []*schema.Column{
		{Name: "batch_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "total_items", Type: field.TypeInt, Default: 0},
		{Name: "priority", Type: field.TypeInt, Default: 5},
		{Name: "channels", Type: field.TypeJSON, Nullable: true},
		{Name: "schedule_type", Type: field.TypeEnum, Enums: []string{"immediate", "hourly", "daily"}, Default: "immediate"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "sent", "failed"}, Default: "pending"},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "delivery_attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AlertBatchesTable holds the schema information for the "alert_batches" table.
	AlertBatchesTable = &schema.Table{
		Name:       "alert_batches",
		Columns:    AlertBatchesColumns,
		PrimaryKey: []*schema.Column{AlertBatchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "alertbatch_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{AlertBatchesColumns[7], AlertBatchesColumns[4], AlertBatchesColumns[11]},
			},
		},
	}
	// AlertDeliveriesColumns holds the columns for the "alert_deliveries" table.
	AlertDeliveriesColumns = []*schema.Column{
		{Name: "delivery_id", Type: field.TypeString, Unique: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "sent", "failed"}, Default: "pending"},
		{Name: "recipient", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "webhook_url", Type: field.TypeString, Nullable: true},
		{Name: "message_id", Type: field.TypeString, Nullable: true},
		{Name: "dedup_hash", Type: field.TypeString, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "delivery_time_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "alert_batch_id", Type: field.TypeString},
	}
	// AlertDeliveriesTable holds the schema information for the "alert_deliveries" table.
	AlertDeliveriesTable = &schema.Table{
		Name:       "alert_deliveries",
		Columns:    AlertDeliveriesColumns,
		PrimaryKey: []*schema.Column{AlertDeliveriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "alert_deliveries_alert_batches_deliveries",
				Columns:    []*schema.Column{AlertDeliveriesColumns[12]},
				RefColumns: []*schema.Column{AlertBatchesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "alertdelivery_alert_batch_id_channel_recipient",
				Unique:  true,
				Columns: []*schema.Column{AlertDeliveriesColumns[12], AlertDeliveriesColumns[1], AlertDeliveriesColumns[3]},
			},
			{
				Name:    "alertdelivery_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AlertDeliveriesColumns[2], AlertDeliveriesColumns[11]},
			},
		},
	}
	// ContentDedupsColumns holds the columns for the "content_dedups" table.
	ContentDedupsColumns = []*schema.Column{
		{Name: "content_id", Type: field.TypeString, Unique: true},
		{Name: "content_hash", Type: field.TypeString, Unique: true},
		{Name: "content_type", Type: field.TypeEnum, Enums: []string{"post", "comment", "subreddit"}},
		{Name: "external_id", Type: field.TypeString},
		{Name: "processing_status", Type: field.TypeEnum, Enums: []string{"new", "processing", "processed", "failed"}, Default: "new"},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "source_agent", Type: field.TypeString, Nullable: true},
		{Name: "workflow_id", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// ContentDedupsTable holds the schema information for the "content_dedups" table.
	ContentDedupsTable = &schema.Table{
		Name:       "content_dedups",
		Columns:    ContentDedupsColumns,
		PrimaryKey: []*schema.Column{ContentDedupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contentdedup_content_type_external_id",
				Unique:  true,
				Columns: []*schema.Column{ContentDedupsColumns[2], ContentDedupsColumns[3]},
			},
			{
				Name:    "contentdedup_processing_status_first_seen_at",
				Unique:  false,
				Columns: []*schema.Column{ContentDedupsColumns[4], ContentDedupsColumns[5]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "skill_name", Type: field.TypeString},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "parameters_hash", Type: field.TypeString},
		{Name: "workflow_id", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "idempotency_key", Type: field.TypeString, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 5},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "next_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "lock_token", Type: field.TypeString, Nullable: true},
		{Name: "lock_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "result_data", Type: field.TypeJSON, Nullable: true},
		{Name: "result_hash", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_agent_type_skill_name_parameters_hash_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[2], TasksColumns[4], TasksColumns[5]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[9], TasksColumns[20]},
			},
			{
				Name:    "task_workflow_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5], TasksColumns[9]},
			},
			{
				Name:    "task_agent_type_status_priority",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[9], TasksColumns[8]},
			},
			{
				Name:    "task_next_retry_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[12]},
			},
			{
				Name:    "task_lock_expires_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[14]},
			},
		},
	}
	// TaskRecoveriesColumns holds the columns for the "task_recoveries" table.
	TaskRecoveriesColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "original_task_id", Type: field.TypeString},
		{Name: "recovery_strategy", Type: field.TypeEnum, Enums: []string{"retry", "rollback", "skip", "checkpoint", "manual"}},
		{Name: "recovery_status", Type: field.TypeEnum, Enums: []string{"pending", "recovering", "completed", "failed"}, Default: "pending"},
		{Name: "recovery_attempt", Type: field.TypeInt, Default: 0},
		{Name: "max_recovery_attempts", Type: field.TypeInt, Default: 3},
		{Name: "checkpoint_data", Type: field.TypeJSON, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "recovery_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "recovery_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "recovery_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TaskRecoveriesTable holds the schema information for the "task_recoveries" table.
	TaskRecoveriesTable = &schema.Table{
		Name:       "task_recoveries",
		Columns:    TaskRecoveriesColumns,
		PrimaryKey: []*schema.Column{TaskRecoveriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "taskrecovery_original_task_id",
				Unique:  false,
				Columns: []*schema.Column{TaskRecoveriesColumns[1]},
			},
			{
				Name:    "taskrecovery_recovery_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TaskRecoveriesColumns[3], TaskRecoveriesColumns[11]},
			},
		},
	}
	// WorkflowsColumns holds the columns for the "workflows" table.
	WorkflowsColumns = []*schema.Column{
		{Name: "workflow_id", Type: field.TypeString, Unique: true},
		{Name: "workflow_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "schedule", Type: field.TypeString, Nullable: true},
		{Name: "last_run", Type: field.TypeTime, Nullable: true},
		{Name: "next_run", Type: field.TypeTime, Nullable: true},
		{Name: "run_count", Type: field.TypeInt, Default: 0},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "posts_processed", Type: field.TypeInt, Default: 0},
		{Name: "comments_processed", Type: field.TypeInt, Default: 0},
		{Name: "relevant_items", Type: field.TypeInt, Default: 0},
		{Name: "summaries_created", Type: field.TypeInt, Default: 0},
		{Name: "alerts_sent", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkflowsTable holds the schema information for the "workflows" table.
	WorkflowsTable = &schema.Table{
		Name:       "workflows",
		Columns:    WorkflowsColumns,
		PrimaryKey: []*schema.Column{WorkflowsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflow_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[2], WorkflowsColumns[17]},
			},
			{
				Name:    "workflow_workflow_type_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[1], WorkflowsColumns[2]},
			},
			{
				Name:    "workflow_next_run",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentStatesTable,
		AlertBatchesTable,
		AlertDeliveriesTable,
		ContentDedupsTable,
		TasksTable,
		TaskRecoveriesTable,
		WorkflowsTable,
	}
)

func init() {
	AlertDeliveriesTable.ForeignKeys[0].RefTable = AlertBatchesTable
}
