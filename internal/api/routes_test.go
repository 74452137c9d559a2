package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Chimelu/hafak-surgicals-backend/internal/api"
	"github.com/Chimelu/hafak-surgicals-backend/internal/api/handlers"
	"github.com/Chimelu/hafak-surgicals-backend/internal/api/middleware"
	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/Chimelu/hafak-surgicals-backend/internal/services/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var routerKey = []byte("router-test-key-0123456789abcdef")

type routerFixture struct {
	router    http.Handler
	equipment *mocks.EquipmentService
	category  *mocks.CategoryService
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		equipment: new(mocks.EquipmentService),
		category:  new(mocks.CategoryService),
	}

	f.router = middleware.Logging(api.NewRouter(api.Handlers{
		Equipment: handlers.NewEquipmentHandler(f.equipment),
		Category:  handlers.NewCategoryHandler(f.category),
		Auth:      handlers.NewAuthHandler(new(mocks.AuthService)),
		Health: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	}, middleware.NewAuthMiddleware(routerKey)))

	return f
}

func bearer(t *testing.T, role models.Role) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID:   uuid.New(),
		Username: "tester",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})

	signed, err := token.SignedString(routerKey)
	require.NoError(t, err)

	return "Bearer " + signed
}

func TestRouterAccess(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		role   models.Role
		setup  func(f *routerFixture)
		status int
	}{
		{
			name:   "public listing is open",
			method: http.MethodGet,
			target: "/api/equipment/public",
			setup: func(f *routerFixture) {
				f.equipment.On("ListPublicEquipment", mock.Anything, mock.Anything).
					Return([]*models.Equipment{}, models.Pagination{Page: 1, Limit: 12}, nil).Once()
			},
			status: http.StatusOK,
		},
		{
			name:   "featured does not match the id route",
			method: http.MethodGet,
			target: "/api/equipment/featured",
			setup: func(f *routerFixture) {
				f.equipment.On("FeaturedEquipment", mock.Anything, mock.Anything).Return([]*models.Equipment{}, nil).Once()
			},
			status: http.StatusOK,
		},
		{
			name:   "admin listing requires a token",
			method: http.MethodGet,
			target: "/api/equipment",
			status: http.StatusUnauthorized,
		},
		{
			name:   "staff may read the admin listing",
			method: http.MethodGet,
			target: "/api/equipment",
			role:   models.RoleStaff,
			setup: func(f *routerFixture) {
				f.equipment.On("ListEquipment", mock.Anything, mock.Anything).
					Return([]*models.Equipment{}, models.Pagination{Page: 1, Limit: 10}, nil).Once()
			},
			status: http.StatusOK,
		},
		{
			name:   "staff may not create equipment",
			method: http.MethodPost,
			target: "/api/equipment",
			role:   models.RoleStaff,
			status: http.StatusForbidden,
		},
		{
			name:   "staff may not delete equipment",
			method: http.MethodDelete,
			target: "/api/equipment/" + uuid.NewString(),
			role:   models.RoleStaff,
			status: http.StatusForbidden,
		},
		{
			name:   "staff may not test uploads",
			method: http.MethodPost,
			target: "/api/equipment/test-upload",
			role:   models.RoleStaff,
			status: http.StatusForbidden,
		},
		{
			name:   "stats overview is not parsed as an id",
			method: http.MethodGet,
			target: "/api/categories/stats/overview",
			role:   models.RoleStaff,
			setup: func(f *routerFixture) {
				f.category.On("CategoryStats", mock.Anything).Return([]*models.CategoryWithCount{}, nil).Once()
			},
			status: http.StatusOK,
		},
		{
			name:   "categories require a token",
			method: http.MethodGet,
			target: "/api/categories",
			status: http.StatusUnauthorized,
		},
		{
			name:   "health is open",
			method: http.MethodGet,
			target: "/api/health",
			status: http.StatusOK,
		},
		{
			name:   "metrics are exposed",
			method: http.MethodGet,
			target: "/metrics",
			status: http.StatusOK,
		},
		{
			name:   "unknown route",
			method: http.MethodGet,
			target: "/api/orders",
			status: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			f := newRouterFixture()
			if tc.setup != nil {
				tc.setup(f)
			}

			req := httptest.NewRequest(tc.method, tc.target, nil)
			if tc.role != "" {
				req.Header.Set("Authorization", bearer(t, tc.role))
			}
			recorder := httptest.NewRecorder()

			// Act
			f.router.ServeHTTP(recorder, req)

			// Assert
			assert.Equal(t, tc.status, recorder.Code)
			f.equipment.AssertExpectations(t)
			f.category.AssertExpectations(t)
		})
	}
}
