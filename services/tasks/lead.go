package tasks

import (
	"context"
	"encoding/json"

	"screenline/models"

	"github.com/hibiken/asynq"
)

const TypeDeliverLead = "lead:deliver"

// NewDeliverLeadTask builds the queue task carrying one captured lead.
func NewDeliverLeadTask(lead models.Lead) (*asynq.Task, error) {
	b, err := json.Marshal(lead)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDeliverLead, b), nil
}

// AsynqDispatcher enqueues lead deliveries onto the redis-backed queue.
type AsynqDispatcher struct {
	Client *asynq.Client
}

func NewAsynqDispatcher(client *asynq.Client) *AsynqDispatcher {
	return &AsynqDispatcher{Client: client}
}

func (d *AsynqDispatcher) Dispatch(ctx context.Context, lead models.Lead) error {
	task, err := NewDeliverLeadTask(lead)
	if err != nil {
		return err
	}
	_, err = d.Client.EnqueueContext(ctx, task)
	return err
}
