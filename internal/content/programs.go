// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/storage"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
)

var trainingProgramColumns = []string{"id", "name", "description", "use_case", "created_at", "updated_at"}

func scanTrainingProgram(row sq.RowScanner) (*types.TrainingProgram, error) {
	var p types.TrainingProgram
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.UseCase, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) CreateTrainingProgram(ctx context.Context, p *types.TrainingProgram) (*types.TrainingProgram, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.CreateTrainingProgram")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("training_programs").
		Columns("id", "name", "description", "use_case").
		Values(newID(), p.Name, p.Description, p.UseCase).
		Suffix("RETURNING " + strings.Join(trainingProgramColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanTrainingProgram(row)
	if err != nil {
		return nil, mapWriteError("training program", err)
	}
	return created, nil
}

func (s *Storage) GetTrainingProgram(ctx context.Context, id string) (*types.TrainingProgram, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.GetTrainingProgram")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(trainingProgramColumns...).
		From("training_programs").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	p, err := scanTrainingProgram(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("training program %s: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get training program: %w", err)
	}
	return p, nil
}

func (s *Storage) ListTrainingPrograms(ctx context.Context) ([]*types.TrainingProgram, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.ListTrainingPrograms")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(trainingProgramColumns...).
		From("training_programs").
		OrderBy("name", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list training programs: %w", err)
	}
	defer rows.Close()

	programs := make([]*types.TrainingProgram, 0)
	for rows.Next() {
		p, err := scanTrainingProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan training program: %w", err)
		}
		programs = append(programs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating training program rows: %w", err)
	}
	return programs, nil
}

func (s *Storage) UpdateTrainingProgram(ctx context.Context, p *types.TrainingProgram) (*types.TrainingProgram, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.UpdateTrainingProgram")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("training_programs").
		Set("name", p.Name).
		Set("description", p.Description).
		Set("use_case", p.UseCase).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING " + strings.Join(trainingProgramColumns, ", ")).
		QueryRowContext(ctx)

	updated, err := scanTrainingProgram(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("training program %s: %w", p.ID, types.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update training program: %w", err)
	}
	return updated, nil
}

// DeleteTrainingProgram removes the program with its ledger rows. Path memberships go by cascade.
func (s *Storage) DeleteTrainingProgram(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "content.Storage.DeleteTrainingProgram")
	defer span.End()

	// the row goes first: it waits out assignments holding a share lock on it, and the
	// ledger delete that follows then sees the rows they wrote
	return s.db.WithTx(ctx, func(ctx context.Context) error {
		result, err := s.db.Statement(ctx).
			Delete("training_programs").
			Where(sq.Eq{"id": id}).
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete training program: %w", err)
		}
		if err := expectRows(result, "training program "+id); err != nil {
			return err
		}

		_, err = s.DeleteRelationshipsByRelated(ctx, types.RelatedTrainingProgram, id)
		return err
	})
}

func (s *Storage) TrainingProgramExists(ctx context.Context, id string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.TrainingProgramExists")
	defer span.End()

	return s.exists(ctx, "training_programs", id)
}

// LockTrainingProgram reports whether the program exists and share-locks its row until commit.
func (s *Storage) LockTrainingProgram(ctx context.Context, id string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.LockTrainingProgram")
	defer span.End()

	return s.lockShared(ctx, "training_programs", id)
}

// AddProgramLearningPath adds a path to a program, or moves it to order if already there.
func (s *Storage) AddProgramLearningPath(ctx context.Context, programID, pathID string, order *int) error {
	ctx, span := s.tracer.Start(ctx, "content.Storage.AddProgramLearningPath")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("training_program_learning_paths").
		Columns("program_id", "learning_path_id", "display_order").
		Values(programID, pathID, order).
		Suffix("ON CONFLICT (program_id, learning_path_id) DO UPDATE SET display_order = EXCLUDED.display_order").
		ExecContext(ctx)
	if storage.IsForeignKeyViolation(err) {
		return storage.WrapForeignKeyError(err, fmt.Sprintf("training program %s or learning path %s", programID, pathID), types.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to add learning path: %w", err)
	}
	return nil
}

func (s *Storage) RemoveProgramLearningPath(ctx context.Context, programID, pathID string) error {
	ctx, span := s.tracer.Start(ctx, "content.Storage.RemoveProgramLearningPath")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Delete("training_program_learning_paths").
		Where(sq.Eq{"program_id": programID, "learning_path_id": pathID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove learning path: %w", err)
	}
	return expectRows(result, fmt.Sprintf("learning path %s in training program %s", pathID, programID))
}

// ListProgramLearningPaths returns the paths of a program by display order, unordered last.
func (s *Storage) ListProgramLearningPaths(ctx context.Context, programID string) ([]*types.ProgramLearningPath, error) {
	ctx, span := s.tracer.Start(ctx, "content.Storage.ListProgramLearningPaths")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("lp.id", "lp.name", "lp.description", "lp.created_at", "lp.updated_at", "m.display_order").
		From("training_program_learning_paths m").
		Join("learning_paths lp ON lp.id = m.learning_path_id").
		Where(sq.Eq{"m.program_id": programID}).
		OrderBy("m.display_order ASC NULLS LAST", "m.created_at", "lp.id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list program learning paths: %w", err)
	}
	defer rows.Close()

	paths := make([]*types.ProgramLearningPath, 0)
	for rows.Next() {
		var p types.ProgramLearningPath
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt, &p.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan learning path: %w", err)
		}
		paths = append(paths, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating learning path rows: %w", err)
	}
	return paths, nil
}
