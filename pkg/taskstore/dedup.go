package taskstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/redscout/redscout/ent"
	"github.com/redscout/redscout/ent/contentdedup"
)

// RegisterContentInput carries the arguments for RegisterContent.
type RegisterContentInput struct {
	ContentType contentdedup.ContentType
	ExternalID  string
	ContentHash string
	SourceAgent string
	WorkflowID  string
	Metadata    map[string]any
}

// RegisterContent records a piece of external content as seen. The second
// registration of the same (content_type, external_id) pair returns
// ErrDuplicateContent, which is how re-scanned posts get processed
// exactly once.
func (s *Store) RegisterContent(ctx context.Context, in RegisterContentInput) (*ent.ContentDedup, error) {
	create := s.client.ContentDedup.Create().
		SetID(uuid.NewString()).
		SetContentType(in.ContentType).
		SetExternalID(in.ExternalID).
		SetContentHash(in.ContentHash).
		SetWorkflowID(in.WorkflowID).
		SetProcessingStatus(contentdedup.ProcessingStatusNew)

	if in.SourceAgent != "" {
		create = create.SetSourceAgent(in.SourceAgent)
	}
	if in.Metadata != nil {
		create = create.SetMetadata(in.Metadata)
	}

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrDuplicateContent
		}
		return nil, fmt.Errorf("failed to register content %s/%s: %w", in.ContentType, in.ExternalID, err)
	}
	return row, nil
}

// MarkContentProcessed transitions a dedup row to processed.
func (s *Store) MarkContentProcessed(ctx context.Context, contentID string) error {
	err := s.client.ContentDedup.UpdateOneID(contentID).
		SetProcessingStatus(contentdedup.ProcessingStatusProcessed).
		SetProcessedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark content %s processed: %w", contentID, err)
	}
	return nil
}
