package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/shelter-admin/service-shelter-web/internal/domain/animal"
	"github.com/shelter-admin/service-shelter-web/internal/domain/employee"
	"github.com/shelter-admin/service-shelter-web/internal/domain/report"
	"github.com/shelter-admin/service-shelter-web/internal/events"
	"github.com/shelter-admin/service-shelter-web/internal/platform/httpclient"
)

type recordingPublisher struct {
	mu     sync.Mutex
	types  []string
	data   []any
	failed bool
}

func (p *recordingPublisher) Publish(_ context.Context, eventType string, data any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failed {
		return errors.New("broker down")
	}
	p.types = append(p.types, eventType)
	p.data = append(p.data, data)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type fakeAnimalRepo struct {
	animals []animal.Animal
	created []animal.NewAnimal
	patches map[int]animal.Patch
	deleted []int
	err     error
}

func (r *fakeAnimalRepo) List(_ context.Context, status animal.Status) ([]animal.Animal, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []animal.Animal
	for _, a := range r.animals {
		if status == "" || a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAnimalRepo) Create(_ context.Context, a animal.NewAnimal) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.created = append(r.created, a)
	return 10 + len(r.created), nil
}

func (r *fakeAnimalRepo) Update(_ context.Context, id int, p animal.Patch) error {
	if r.err != nil {
		return r.err
	}
	if r.patches == nil {
		r.patches = map[int]animal.Patch{}
	}
	r.patches[id] = p
	return nil
}

func (r *fakeAnimalRepo) Delete(_ context.Context, id int) error {
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeEmployeeRepo struct {
	salaries map[int]float64
	err      error
}

func (r *fakeEmployeeRepo) List(context.Context) ([]employee.Employee, error) { return nil, r.err }

func (r *fakeEmployeeRepo) Create(context.Context, employee.NewEmployee) (int, error) { return 1, r.err }

func (r *fakeEmployeeRepo) UpdateSalary(_ context.Context, id int, salary float64) error {
	if r.err != nil {
		return r.err
	}
	if r.salaries == nil {
		r.salaries = map[int]float64{}
	}
	r.salaries[id] = salary
	return nil
}

type fakeReportRepo struct {
	rows map[string][]report.Row
	errs map[string]error
}

func (r *fakeReportRepo) Fetch(_ context.Context, path string) ([]report.Row, error) {
	if err := r.errs[path]; err != nil {
		return nil, err
	}
	return r.rows[path], nil
}

func TestAnimalService_CreateSetsAvailableAndPublishes(t *testing.T) {
	repo := &fakeAnimalRepo{}
	pub := &recordingPublisher{}
	svc := NewAnimalService(repo, pub, zap.NewNop())

	id, err := svc.CreateAnimal(context.Background(), CreateAnimalRequest{Name: "Bella", Species: "Dog", Age: 3, ShelterID: 1})
	require.NoError(t, err)
	assert.Equal(t, 11, id)
	require.Len(t, repo.created, 1)
	assert.Equal(t, animal.StatusAvailable, repo.created[0].Status)
	assert.Equal(t, []string{events.AnimalCreated}, pub.types)
}

func TestAnimalService_ListAvailableFilters(t *testing.T) {
	repo := &fakeAnimalRepo{animals: []animal.Animal{
		{ID: 1, Status: animal.StatusAdopted},
		{ID: 2, Status: animal.StatusAvailable},
	}}
	svc := NewAnimalService(repo, nil, zap.NewNop())

	got, err := svc.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestAnimalService_RenameSkipsBlankAndUnchanged(t *testing.T) {
	repo := &fakeAnimalRepo{}
	pub := &recordingPublisher{}
	svc := NewAnimalService(repo, pub, zap.NewNop())
	ctx := context.Background()

	for _, name := range []string{"", "   ", "Bella"} {
		sent, err := svc.RenameAnimal(ctx, 1, "Bella", name)
		require.NoError(t, err)
		assert.False(t, sent, "name %q", name)
	}
	assert.Empty(t, repo.patches)
	assert.Empty(t, pub.types)

	sent, err := svc.RenameAnimal(ctx, 1, "Bella", "Luna")
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Equal(t, "Luna", repo.patches[1].Name)
	assert.Equal(t, []string{events.AnimalUpdated}, pub.types)
}

func TestAnimalService_DeleteFailureKeepsRejection(t *testing.T) {
	repo := &fakeAnimalRepo{err: &httpclient.APIError{StatusCode: 400, Message: "Animal not found"}}
	pub := &recordingPublisher{}
	svc := NewAnimalService(repo, pub, zap.NewNop())

	err := svc.DeleteAnimal(context.Background(), 9)
	require.Error(t, err)
	assert.Equal(t, "Animal not found", httpclient.Message(err))
	assert.Empty(t, pub.types)
}

func TestAnimalService_PublishFailureIsLoggedOnly(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	pub := &recordingPublisher{failed: true}
	svc := NewAnimalService(&fakeAnimalRepo{}, pub, zap.New(core))

	require.NoError(t, svc.DeleteAnimal(context.Background(), 3))
	assert.Equal(t, 1, logs.FilterMessage("failed to publish activity event").Len())
}

func TestParseSalary(t *testing.T) {
	v, err := ParseSalary(" 52000.5 ")
	require.NoError(t, err)
	assert.InDelta(t, 52000.5, v, 1e-9)

	for _, in := range []string{"", "abc", "0", "-10", "NaN", "Inf"} {
		_, err := ParseSalary(in)
		assert.ErrorIs(t, err, ErrInvalidSalary, "input %q", in)
	}
}

func TestEmployeeService_UpdateSalary(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	pub := &recordingPublisher{}
	svc := NewEmployeeService(repo, pub, zap.NewNop())
	ctx := context.Background()

	sent, err := svc.UpdateSalary(ctx, 4, "-5")
	assert.ErrorIs(t, err, ErrInvalidSalary)
	assert.False(t, sent)
	assert.Empty(t, repo.salaries)

	for _, blank := range []string{"", "   "} {
		sent, err = svc.UpdateSalary(ctx, 4, blank)
		require.NoError(t, err)
		assert.False(t, sent, "%q", blank)
	}
	assert.Empty(t, repo.salaries)

	sent, err = svc.UpdateSalary(ctx, 4, "61000")
	require.NoError(t, err)
	assert.True(t, sent)
	assert.InDelta(t, 61000.0, repo.salaries[4], 1e-9)
	assert.Equal(t, []string{events.EmployeeSalaryUpdated}, pub.types)
}

func TestReportService_LoadAllKeepsOrderAndIsolatesFailures(t *testing.T) {
	defer goleak.VerifyNone(t)

	defs := report.Standard()
	repo := &fakeReportRepo{
		rows: map[string][]report.Row{
			report.ShelterOccupancy.Path: {{"name": "North"}},
			report.MultiAdopters.Path:    {},
		},
		errs: map[string]error{
			report.EmployeesAboveAverage.Path: &httpclient.APIError{StatusCode: 500, Message: "HTTP error! Status: 500"},
		},
	}
	svc := NewReportService(repo, zap.NewNop())

	results := svc.LoadAll(context.Background(), defs)
	require.Len(t, results, 3)
	for i, def := range defs {
		assert.Equal(t, def.ID, results[i].Definition.ID)
	}
	assert.NoError(t, results[0].Err)
	assert.Len(t, results[0].Rows, 1)
	assert.Equal(t, "HTTP error! Status: 500", httpclient.Message(results[1].Err))
	assert.NoError(t, results[2].Err)
	assert.Empty(t, results[2].Rows)
}
