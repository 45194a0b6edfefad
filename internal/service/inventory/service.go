package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fieldscope/fieldops-inventory/internal/model"
	"github.com/fieldscope/fieldops-inventory/internal/platform/logger"
)

type EquipmentRepository interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.EquipmentLine, error)
	UpdateGlobalPartQuantity(ctx context.Context, partID uuid.UUID, quantity int64, checkedAt time.Time) error
	UpsertInventoryRecord(ctx context.Context, equipmentID uuid.UUID, quantity int64, needsOrder bool, updatedAt time.Time) error
}

type CheckEventSender interface {
	SendInventoryChecked(ctx context.Context, event model.InventoryChecked) error
}

type service struct {
	repo           EquipmentRepository
	events         CheckEventSender
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewInventoryService(
	repo EquipmentRepository,
	events CheckEventSender,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		events:         events,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Catalog loads the project's equipment lines with their joined stock rows.
func (s *service) Catalog(ctx context.Context, projectID uuid.UUID) ([]*model.EquipmentLine, error) {
	const op = "inventory.service.Catalog"
	log := logger.With(
		logger.String("project_id", projectID.String()),
	)

	if projectID == uuid.Nil {
		log.Error(ctx, "validation: empty project id")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	lines, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		log.Error(ctx, "repository list by project", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return lines, nil
}

// CatalogView is Catalog grouped by room and annotated with stock statuses
// under the given overlay. A nil overlay yields the stored-state view.
func (s *service) CatalogView(ctx context.Context, projectID uuid.UUID, ov *Overlay) (*model.CatalogView, error) {
	lines, err := s.Catalog(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return BuildView(projectID, lines, ov), nil
}

// BuildView groups lines by room label, preserving catalog order inside
// groups and first-appearance order across groups. Pure.
func BuildView(projectID uuid.UUID, lines []*model.EquipmentLine, ov *Overlay) *model.CatalogView {
	view := &model.CatalogView{ProjectID: projectID}
	index := make(map[string]int)

	for _, line := range lines {
		status := ov.StatusFor(line)

		label := line.RoomLabel()
		i, ok := index[label]
		if !ok {
			i = len(view.Groups)
			index[label] = i
			view.Groups = append(view.Groups, model.RoomGroup{Label: label})
		}
		view.Groups[i].Lines = append(view.Groups[i].Lines, model.LineView{
			Line:   line,
			Status: status,
		})

		view.TotalLines++
		if status.Shortage > 0 {
			view.ShortLines++
		}
	}

	return view
}

// Commit persists every pending edit to its resolved backing store. Writes
// fan out concurrently; any rejected write fails the whole commit and the
// overlay is left fully intact so the edits survive for a retry. Only a
// completely successful commit clears the overlay and emits the
// inventory.checked event.
func (s *service) Commit(ctx context.Context, projectID uuid.UUID, ov *Overlay) (*model.CommitResult, error) {
	const op = "inventory.service.Commit"
	log := logger.With(
		logger.String("project_id", projectID.String()),
	)

	if projectID == uuid.Nil {
		log.Error(ctx, "validation: empty project id")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}
	if ov == nil || ov.Len() == 0 {
		return &model.CommitResult{}, nil
	}

	log = log.With(logger.Int("pending_edits", ov.Len()))

	rdbCtx, rdbCancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer rdbCancel()

	lines, err := s.repo.ListByProject(rdbCtx, projectID)
	if err != nil {
		log.Error(ctx, "repository list by project", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	byID := make(map[uuid.UUID]*model.EquipmentLine, len(lines))
	for _, line := range lines {
		byID[line.ID] = line
	}

	result := &model.CommitResult{}
	targets := make([]model.CommitTarget, 0, ov.Len())
	for lineID, quantity := range ov.Edits() {
		line, ok := byID[lineID]
		if !ok {
			result.Failed = append(result.Failed, model.LineFailure{
				EquipmentID: lineID,
				Err:         model.ErrEquipmentNotFound,
			})
			continue
		}

		target := model.CommitTarget{
			EquipmentID:    line.ID,
			Source:         line.ResolveStock().Source,
			Name:           line.Name,
			Quantity:       quantity,
			NeededQuantity: line.NeededQuantity,
		}
		if target.Source == model.StockSourceGlobal {
			target.GlobalPartID = line.GlobalPart.ID
		}
		targets = append(targets, target)
	}

	// Unknown lines mean a stale overlay: fail before touching anything.
	if len(result.Failed) > 0 {
		log.Error(ctx, "commit references unknown equipment",
			logger.Int("unknown_lines", len(result.Failed)),
		)
		return result, fmt.Errorf("%s: %w", op, model.ErrCommitFailed)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer wdbCancel()

	now := time.Now()
	outcomes := make([]error, len(targets))

	// One write per edit, dispatched concurrently. Each goroutine records
	// into its own slot; a failed sibling never cancels an in-flight write.
	var eg errgroup.Group
	for i, target := range targets {
		eg.Go(func() error {
			switch target.Source {
			case model.StockSourceGlobal:
				outcomes[i] = s.repo.UpdateGlobalPartQuantity(wdbCtx, target.GlobalPartID, target.Quantity, now)
			default:
				// Legacy record, created on the fly for untracked lines.
				needsOrder := target.Quantity < target.NeededQuantity
				outcomes[i] = s.repo.UpsertInventoryRecord(wdbCtx, target.EquipmentID, target.Quantity, needsOrder, now)
			}
			return nil
		})
	}
	_ = eg.Wait()

	for i, target := range targets {
		if outcomes[i] != nil {
			result.Failed = append(result.Failed, model.LineFailure{
				EquipmentID: target.EquipmentID,
				Err:         outcomes[i],
			})
			continue
		}
		result.Applied = append(result.Applied, target.EquipmentID)
	}

	if !result.Ok() {
		log.Error(ctx, "batch commit failed",
			logger.Int("failed_lines", len(result.Failed)),
			logger.Int("applied_lines", len(result.Applied)),
		)
		return result, fmt.Errorf("%s: %w", op, model.ErrCommitFailed)
	}

	ov.ClearAll()

	// Best effort: stock counts are already durable, a dead broker must
	// not fail the commit.
	if err := s.events.SendInventoryChecked(ctx, buildCheckedEvent(projectID, targets, now)); err != nil {
		log.Warn(ctx, "send inventory checked event", logger.ErrorF(err))
	}

	log.Info(ctx, "inventory committed", logger.Int("applied_lines", len(result.Applied)))
	return result, nil
}

func buildCheckedEvent(projectID uuid.UUID, targets []model.CommitTarget, checkedAt time.Time) model.InventoryChecked {
	event := model.InventoryChecked{
		EventID:   uuid.New(),
		ProjectID: projectID,
		CheckedAt: checkedAt,
		Lines:     make([]model.CheckedLine, 0, len(targets)),
	}

	for _, t := range targets {
		shortage := t.NeededQuantity - t.Quantity
		if shortage < 0 {
			shortage = 0
		}
		event.Lines = append(event.Lines, model.CheckedLine{
			EquipmentID:    t.EquipmentID,
			Name:           t.Name,
			Source:         t.Source,
			QuantityOnHand: t.Quantity,
			NeededQuantity: t.NeededQuantity,
			Shortage:       shortage,
			NeedsOrder:     t.Quantity < t.NeededQuantity,
		})
	}

	return event
}
