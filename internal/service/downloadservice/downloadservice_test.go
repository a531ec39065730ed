package downloadservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/knowledgebuddy/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

const template = "https://drive.google.com/uc?export=download&id=%s"

func NewMock(t *testing.T) (*Service, *MockRepo, *MockResourceRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	resources := NewMockResourceRepo(ctrl)
	return New(repo, resources, template), repo, resources
}

func TestRecordDownload(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name        string
		sessionID   string
		prepareMock func()
		expected    bool
	}{
		{
			name:      "Download is recorded",
			sessionID: "user_1",
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), &domain.Download{ResourceID: "abc-123", UserSession: "user_1"}).Return(nil)
			},
			expected: true,
		},
		{
			name:        "Missing session",
			sessionID:   "",
			prepareMock: func() {},
			expected:    false,
		},
		{
			name:      "Storage failure",
			sessionID: "user_1",
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			assert.Equal(t, tt.expected, service.RecordDownload(context.Background(), tt.sessionID, "abc-123"))
		})
	}
}

func TestRecordDownloadIsNotDeduplicated(t *testing.T) {
	service, repo, _ := NewMock(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	for i := 0; i < 3; i++ {
		assert.True(t, service.RecordDownload(context.Background(), "user_1", "abc-123"))
	}
}

func TestStartDownload(t *testing.T) {
	service, repo, resources := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expectedURL string
		expectedErr error
	}{
		{
			name: "Recorded and resolved",
			prepareMock: func() {
				resources.EXPECT().FindByID(gomock.Any(), "abc-123").Return(&domain.Resource{ID: "abc-123", DriveFileID: "f1"}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedURL: "https://drive.google.com/uc?export=download&id=f1",
		},
		{
			name: "Recording failure does not block the download",
			prepareMock: func() {
				resources.EXPECT().FindByID(gomock.Any(), "abc-123").Return(&domain.Resource{ID: "abc-123", DriveFileID: "f1"}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			expectedURL: "https://drive.google.com/uc?export=download&id=f1",
		},
		{
			name: "Unknown resource",
			prepareMock: func() {
				resources.EXPECT().FindByID(gomock.Any(), "abc-123").Return(nil, nil)
			},
			expectedErr: ErrResourceNotFound,
		},
		{
			name: "Resource without file",
			prepareMock: func() {
				resources.EXPECT().FindByID(gomock.Any(), "abc-123").Return(&domain.Resource{ID: "abc-123"}, nil)
			},
			expectedErr: ErrNoFile,
		},
		{
			name: "Lookup failure",
			prepareMock: func() {
				resources.EXPECT().FindByID(gomock.Any(), "abc-123").Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			url, err := service.StartDownload(context.Background(), "user_1", "abc-123")
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Empty(t, url)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedURL, url)
		})
	}
}
