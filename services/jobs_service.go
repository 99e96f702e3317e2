package services

import (
	"context"
	"database/sql"
	"fmt"

	"oraconsoleapi/models"
	"oraconsoleapi/pkg/readmodel"
	"oraconsoleapi/pkg/scriptgen"
	"oraconsoleapi/services/activity"
	"oraconsoleapi/services/oracle"
	"oraconsoleapi/utils"
)

// JobsService manages legacy DBMS_JOB entries.
type JobsService interface {
	Legacy(ctx context.Context) ([]readmodel.LegacyJob, error)
	Summary(ctx context.Context) (*readmodel.JobCounts, error)
	Running(ctx context.Context) ([]map[string]any, error)
	Run(ctx context.Context, job int) error
	Broken(ctx context.Context, job int, broken bool) error
	Remove(ctx context.Context, job int) error
	Submit(ctx context.Context, req models.JobSubmitRequest) error
}

type jobsService struct {
	oracleBase
}

func NewJobsService(deps OracleDeps) JobsService {
	return &jobsService{oracleBase{deps}}
}

func (s *jobsService) Legacy(ctx context.Context) ([]readmodel.LegacyJob, error) {
	rows, err := s.rows(ctx, "legacy_jobs", legacyJobsQuery)
	if err != nil {
		return nil, err
	}
	jobs := make([]readmodel.LegacyJob, 0, len(rows))
	for _, r := range rows {
		jobs = append(jobs, readmodel.NormalizeLegacyJob(r))
	}
	return jobs, nil
}

func (s *jobsService) Summary(ctx context.Context) (*readmodel.JobCounts, error) {
	jobs, err := s.Legacy(ctx)
	if err != nil {
		return nil, err
	}
	counts := readmodel.CountJobs(jobs)
	return &counts, nil
}

func (s *jobsService) Running(ctx context.Context) ([]map[string]any, error) {
	return s.rows(ctx, "running_jobs", runningJobsQuery)
}

func (s *jobsService) Run(ctx context.Context, job int) error {
	stmt, err := scriptgen.RunJobPLSQL(job)
	if err != nil {
		return utils.Invalid(err)
	}
	return s.exec(ctx, activity.CategoryJob, stmt)
}

func (s *jobsService) Broken(ctx context.Context, job int, broken bool) error {
	stmt, err := scriptgen.BrokenJobPLSQL(job, broken)
	if err != nil {
		return utils.Invalid(err)
	}
	return s.exec(ctx, activity.CategoryJob, stmt)
}

func (s *jobsService) Remove(ctx context.Context, job int) error {
	stmt, err := scriptgen.RemoveJobPLSQL(job)
	if err != nil {
		return utils.Invalid(err)
	}
	return s.exec(ctx, activity.CategoryJob, stmt)
}

func (s *jobsService) Submit(ctx context.Context, req models.JobSubmitRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	stmt := scriptgen.SubmitJobPLSQL(req.NextDate, req.Interval)
	return s.act(ctx, activity.CategoryJob, fmt.Sprintf("submit job: %s", req.What), func(ctx context.Context, db *sql.DB, _ *models.DatabaseConnection) error {
		return oracle.Exec(ctx, db, stmt, sql.Named("what", req.What))
	})
}
