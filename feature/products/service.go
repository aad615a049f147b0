package products

import (
	"context"
	"fmt"
	"strings"

	"dbapi-compare/core/api"
	"dbapi-compare/core/config"
	"dbapi-compare/core/database"
	"dbapi-compare/core/export"
	"dbapi-compare/core/join"
	"dbapi-compare/core/progress"
	"dbapi-compare/core/record"
	"dbapi-compare/core/timerange"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs database vs. API comparisons for merchant products.
type Service struct {
	db       *gorm.DB
	client   *api.Client
	profiles *config.Profiles
	export   export.Config
	maxRows  int
	logger   *zap.Logger
}

// NewService creates a new products service. maxRows is the global row cap
// applied when a profile does not set its own.
func NewService(db *gorm.DB, client *api.Client, profiles *config.Profiles, exportCfg export.Config, maxRows int, logger *zap.Logger) *Service {
	return &Service{
		db:       db,
		client:   client,
		profiles: profiles,
		export:   exportCfg,
		maxRows:  maxRows,
		logger:   logger,
	}
}

// RunRequest parameterizes one comparison run. Empty date fields mean the
// current day in the profile's timezone.
type RunRequest struct {
	Profile  string `json:"profile"`
	FromDate string `json:"from_date"`
	FromTime string `json:"from_time"`
	ToDate   string `json:"to_date"`
	ToTime   string `json:"to_time"`
}

// RunReport is the outcome of one comparison run.
type RunReport struct {
	Profile  string            `json:"profile"`
	From     string            `json:"from"`
	To       string            `json:"to"`
	DBRows   int               `json:"db_rows"`
	APIRows  int               `json:"api_rows"`
	Merged   int               `json:"merged"`
	Stats    RunStats          `json:"stats"`
	Exports  export.Paths      `json:"exports"`
	Fixes    map[string]string `json:"fixes,omitempty"`
	Finished string            `json:"finished"`
}

// ProfileNames returns the available profile names.
func (s *Service) ProfileNames() []string {
	return s.profiles.Names()
}

// Compare executes the full pipeline for one profile: read the database
// side, fetch the API side, join, validate, export and persist fixes.
// Progress lines are published to q throughout.
func (s *Service) Compare(ctx context.Context, req RunRequest, q progress.Reporter) (*RunReport, error) {
	prof, err := s.profiles.Get(req.Profile)
	if err != nil {
		return nil, err
	}

	fromISO, toISO, err := s.resolveRange(req, prof)
	if err != nil {
		return nil, err
	}
	progress.Put(q, fmt.Sprintf("Run %q, range %s .. %s", req.Profile, fromISO, toISO))

	if err := s.preflight(q); err != nil {
		return nil, err
	}

	dbTable, err := s.readDB(ctx, prof, q)
	if err != nil {
		return nil, err
	}

	apiCfg, err := s.profiles.APIConfig(prof)
	if err != nil {
		return nil, err
	}
	apiTable, err := s.client.FetchAll(ctx, apiCfg, fromISO, toISO, q)
	if err != nil {
		return nil, fmt.Errorf("API fetch failed: %w", err)
	}

	merged, err := join.Join(dbTable, apiTable, prof.Join)
	if err != nil {
		return nil, err
	}
	progress.Put(q, fmt.Sprintf("Join (%s): %d rows.", prof.Join.How, merged.Len()))

	runner := NewRunner(prof.Join)
	annotated, scripts, stats := runner.Validate(merged, q)

	paths, err := export.WriteRun(s.export.Dir, dbTable, apiTable, annotated, s.export.Excel, q)
	if err != nil {
		return nil, fmt.Errorf("export failed: %w", err)
	}

	var sink Sink
	if s.export.FixDir != "" {
		sink = NewDirSink(s.export.FixDir)
	}
	fixes := PersistFixes(scripts, sink, q)

	s.logger.Info("comparison run finished",
		zap.String("profile", req.Profile),
		zap.Int("db_rows", dbTable.Len()),
		zap.Int("api_rows", apiTable.Len()),
		zap.Int("ok", stats.OK),
		zap.Int("mismatched", stats.Mismatched),
		zap.Int("unregistered", stats.Unregistered))

	return &RunReport{
		Profile:  req.Profile,
		From:     fromISO,
		To:       toISO,
		DBRows:   dbTable.Len(),
		APIRows:  apiTable.Len(),
		Merged:   merged.Len(),
		Stats:    stats,
		Exports:  paths,
		Fixes:    fixes,
		Finished: timerange.NowISOUTC(),
	}, nil
}

// resolveRange turns the request's date fields into an ISO range, falling
// back to the current day in the profile's timezone.
func (s *Service) resolveRange(req RunRequest, prof config.Profile) (string, string, error) {
	if req.FromDate == "" && req.ToDate == "" {
		return timerange.TodayRange(prof.Timezone)
	}
	return timerange.MakeISORange(req.FromDate, req.FromTime, req.ToDate, req.ToTime, prof.Timezone)
}

// preflight verifies the Wawi article table carries the columns the fix
// statements reference. A schema mismatch aborts the run before any data
// moves; an inspection failure only warns, the SELECT itself still decides.
func (s *Service) preflight(q progress.Reporter) error {
	ok, missing, err := database.HasColumns(s.db, WawiTable, WawiJfskuColumn, WawiKeyColumn)
	if err != nil {
		s.logger.Warn("column preflight failed", zap.String("table", WawiTable), zap.Error(err))
		progress.Put(q, "Preflight skipped: "+err.Error())
		return nil
	}
	if !ok {
		return fmt.Errorf("table %s is missing columns: %s", WawiTable, strings.Join(missing, ", "))
	}
	progress.Put(q, fmt.Sprintf("Preflight ok: %s has %s and %s.", WawiTable, WawiJfskuColumn, WawiKeyColumn))
	return nil
}

func (s *Service) readDB(ctx context.Context, prof config.Profile, q progress.Reporter) (*record.Table, error) {
	sqlText, err := database.ValidateSelect(prof.DB.SQL)
	if err != nil {
		return nil, err
	}
	maxRows := prof.DB.MaxRows
	if maxRows <= 0 {
		maxRows = s.maxRows
	}
	table, err := database.ReadSelect(ctx, s.db, sqlText, maxRows, q)
	if err != nil {
		return nil, fmt.Errorf("database read failed: %w", err)
	}
	return table, nil
}
