package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/amorags/notepad/internal/logger"
	"github.com/amorags/notepad/internal/mock"
	"github.com/amorags/notepad/internal/store"
	"github.com/amorags/notepad/models"
)

const validContent = "one two three four five six seven eight nine ten"

func newTestNoteSvc(t *testing.T, ctrl *gomock.Controller) (NoteService, *mock.MockNoteRepository) {
	t.Helper()
	mockRepo := mock.NewMockNoteRepository(ctrl)
	return NewNoteService(mockRepo, logger.NewLogger("test")), mockRepo
}

func TestListNotes_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	expected := []models.Note{
		{ID: 2, Name: "newer", CreatedDate: time.Now()},
		{ID: 1, Name: "older", CreatedDate: time.Now().Add(-time.Hour)},
	}
	mockRepo.EXPECT().List(ctx, int64(1), 0, 100).Return(expected, nil)

	notes, err := svc.ListNotes(ctx, 1, 0, 100)
	require.NoError(t, err)

	assert.Equal(t, expected, notes)
}

func TestListNotes_InvalidBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name  string
		skip  int
		limit int
	}{
		{"negative skip", -1, 100},
		{"zero limit", 0, 0},
		{"limit too large", 0, 1001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ListNotes(ctx, 1, tt.skip, tt.limit)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestGetNote_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetByID(ctx, int64(1), int64(5)).Return(models.Note{ID: 5}, nil)

	note, err := svc.GetNote(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), note.ID)

	mockRepo.EXPECT().GetByID(ctx, int64(1), int64(6)).Return(models.Note{}, store.ErrNoteNotFound)

	_, err = svc.GetNote(ctx, 1, 6)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestCreateNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	payload := models.NotePayload{Name: "ideas", Content: validContent}

	mockRepo.EXPECT().Create(ctx, models.Note{
		Name:    payload.Name,
		Content: payload.Content,
		UserID:  1,
	}).DoAndReturn(func(_ context.Context, note models.Note) (models.Note, error) {
		note.ID = 7
		note.CreatedDate = time.Now()
		return note, nil
	})

	created, err := svc.CreateNote(ctx, 1, payload)
	require.NoError(t, err)

	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, int64(1), created.UserID)
}

func TestCreateNote_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name    string
		payload models.NotePayload
	}{
		{"empty name", models.NotePayload{Name: "", Content: validContent}},
		{"content too short", models.NotePayload{Name: "n", Content: "short"}},
		{"too few words", models.NotePayload{Name: "n", Content: "onlythreewords in here"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateNote(ctx, 1, tt.payload)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestUpdateNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	payload := models.NotePayload{Name: "renamed", Content: validContent}

	mockRepo.EXPECT().Update(ctx, models.Note{
		ID:      4,
		Name:    payload.Name,
		Content: payload.Content,
		UserID:  1,
	}).Return(models.Note{ID: 4, Name: payload.Name, Content: payload.Content, UserID: 1}, nil)

	updated, err := svc.UpdateNote(ctx, 1, 4, payload)
	require.NoError(t, err)

	assert.Equal(t, "renamed", updated.Name)
}

func TestUpdateNote_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.UpdateNote(ctx, 1, 4, models.NotePayload{Name: "", Content: validContent})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestDeleteNote_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Delete(ctx, int64(1), int64(9)).Return(true, nil)

	deleted, err := svc.DeleteNote(ctx, 1, 9)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestWordCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNoteSvc(t, ctrl)

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"simple", "hello world", 2},
		{"collapsed whitespace", "  hello   world  ", 2},
		{"newlines and tabs", "a\nb\tc", 3},
		{"empty", "", 0},
		{"whitespace only", "   \n\t ", 0},
		{"ten words", validContent, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.WordCount(tt.content))
		})
	}
}
