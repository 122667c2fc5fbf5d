package database

import "gorm.io/gorm"

type RunRepository struct {
	db *gorm.DB
}

func NewRunRepository(db *gorm.DB) *RunRepository {
	return &RunRepository{db: db}
}

func (r *RunRepository) CreateRun(run *Run) error {
	return r.db.Create(run).Error
}

func (r *RunRepository) GetRunByID(id uint) (*Run, error) {
	var run Run
	if err := r.db.First(&run, id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *RunRepository) ListRuns(limit, offset int) ([]Run, error) {
	var runs []Run
	if err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *RunRepository) FinishRun(id uint, status, summary string) error {
	return r.db.Model(&Run{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":  status,
			"summary": summary,
		}).Error
}

func (r *RunRepository) CreateAction(a *ActionRecord) error {
	return r.db.Create(a).Error
}

func (r *RunRepository) GetActionsByRunID(runID uint) ([]ActionRecord, error) {
	var actions []ActionRecord
	if err := r.db.Where("run_id = ?", runID).Order("id ASC").Find(&actions).Error; err != nil {
		return nil, err
	}
	return actions, nil
}
