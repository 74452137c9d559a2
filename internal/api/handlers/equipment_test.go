package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Chimelu/hafak-surgicals-backend/internal/api/handlers"
	appErrors "github.com/Chimelu/hafak-surgicals-backend/internal/errors"
	"github.com/Chimelu/hafak-surgicals-backend/internal/media"
	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/Chimelu/hafak-surgicals-backend/internal/query"
	service "github.com/Chimelu/hafak-surgicals-backend/internal/services"
	"github.com/Chimelu/hafak-surgicals-backend/internal/services/mocks"
	"github.com/Chimelu/hafak-surgicals-backend/internal/testutils"
	"github.com/Chimelu/hafak-surgicals-backend/internal/utils/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func setupEquipmentTest() (*mocks.EquipmentService, *handlers.EquipmentHandler) {
	mockEquipmentService := new(mocks.EquipmentService)
	equipmentHandler := handlers.NewEquipmentHandler(mockEquipmentService)
	return mockEquipmentService, equipmentHandler
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	return resp
}

type multipartBody struct {
	fields map[string]string
	files  map[string][]byte
}

func (b multipartBody) encode(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range b.fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	for field, data := range b.files {
		part, err := writer.CreateFormFile(field, field+".png")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestListPublicEquipment(t *testing.T) {
	t.Run("Success - pagination and count", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/equipment/public?page=2&limit=1&category=Surgical%20Instruments", nil, nil)
		recorder := httptest.NewRecorder()

		items := []*models.Equipment{{ID: uuid.New(), Name: "Surgical Scalpel Set"}}
		pagination := models.Pagination{Page: 2, Limit: 1, Total: 3, Pages: 3}

		mockEquipmentService.On("ListPublicEquipment", mock.Anything, query.PublicParams{Page: 2, Limit: 1, Category: "Surgical Instruments"}).
			Return(items, pagination, nil).Once()

		// Act
		equipmentHandler.ListPublic()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Count)
		assert.Equal(t, 1, *resp.Count)
		require.NotNil(t, resp.Pagination)
		assert.Equal(t, 3, resp.Pagination.Pages)

		mockEquipmentService.AssertExpectations(t)
	})

	t.Run("Success - malformed page falls back to default", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/equipment/public?page=abc&limit=5", nil, nil)
		recorder := httptest.NewRecorder()

		mockEquipmentService.On("ListPublicEquipment", mock.Anything, query.PublicParams{Limit: 5}).
			Return([]*models.Equipment{}, models.Pagination{Page: 1, Limit: 5}, nil).Once()

		// Act
		equipmentHandler.ListPublic()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"data":[]`)
		mockEquipmentService.AssertExpectations(t)
	})

	t.Run("Failure - store error is hidden", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/equipment/public", nil, nil)
		recorder := httptest.NewRecorder()

		mockEquipmentService.On("ListPublicEquipment", mock.Anything, query.PublicParams{}).
			Return(nil, models.Pagination{}, appErrors.DatabaseError("Failed to fetch equipment").WithError(assert.AnError)).Once()

		// Act
		equipmentHandler.ListPublic()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), assert.AnError.Error())
	})
}

func TestGetPublicEquipment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		id := uuid.New()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/equipment/public/"+id.String(), nil, map[string]string{"id": id.String()})
		recorder := httptest.NewRecorder()

		mockEquipmentService.On("GetPublicEquipment", mock.Anything, id).Return(&models.Equipment{ID: id, Name: "Digital Stethoscope"}, nil).Once()

		// Act
		equipmentHandler.GetPublic()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Digital Stethoscope")
	})

	t.Run("Failure - malformed id", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/equipment/public/not-an-id", nil, map[string]string{"id": "not-an-id"})
		recorder := httptest.NewRecorder()

		// Act
		equipmentHandler.GetPublic()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.Equal(t, "Equipment not found", resp.Message)
		mockEquipmentService.AssertNotCalled(t, "GetPublicEquipment", mock.Anything, mock.Anything)
	})

	t.Run("Failure - not found", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		id := uuid.New()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/equipment/public/"+id.String(), nil, map[string]string{"id": id.String()})
		recorder := httptest.NewRecorder()

		mockEquipmentService.On("GetPublicEquipment", mock.Anything, id).Return(nil, appErrors.NotFoundError("Equipment not found")).Once()

		// Act
		equipmentHandler.GetPublic()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, appErrors.ErrCodeNotFound, decodeResponse(t, recorder).Code)
	})
}

func TestFeaturedEquipment(t *testing.T) {
	t.Run("Success - limit forwarded", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/equipment/featured?limit=3", nil, nil)
		recorder := httptest.NewRecorder()

		mockEquipmentService.On("FeaturedEquipment", mock.Anything, query.FeaturedParams{Limit: 3}).
			Return([]*models.Equipment{{Name: "Patient Monitor"}}, nil).Once()

		// Act
		equipmentHandler.Featured()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeResponse(t, recorder)
		require.NotNil(t, resp.Count)
		assert.Equal(t, 1, *resp.Count)
		assert.Nil(t, resp.Pagination)
		mockEquipmentService.AssertExpectations(t)
	})

	t.Run("Success - no limit", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/equipment/featured", nil, nil)
		recorder := httptest.NewRecorder()

		mockEquipmentService.On("FeaturedEquipment", mock.Anything, query.FeaturedParams{}).
			Return([]*models.Equipment{}, nil).Once()

		// Act
		equipmentHandler.Featured()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockEquipmentService.AssertExpectations(t)
	})
}

func TestSearchEquipment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/equipment/search?q=stethoscope&limit=5", nil, nil)
		recorder := httptest.NewRecorder()

		mockEquipmentService.On("SearchEquipment", mock.Anything, query.SearchParams{Q: "stethoscope", Limit: 5}).
			Return([]*models.Equipment{{Name: "Digital Stethoscope"}}, nil).Once()

		// Act
		equipmentHandler.Search()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeResponse(t, recorder)
		require.NotNil(t, resp.Count)
		assert.Equal(t, 1, *resp.Count)
		assert.Nil(t, resp.Pagination)
	})

	t.Run("Failure - empty query", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/equipment/search?q=", nil, nil)
		recorder := httptest.NewRecorder()

		mockEquipmentService.On("SearchEquipment", mock.Anything, query.SearchParams{}).
			Return(nil, appErrors.BadRequestError(service.MessageSearchEmpty)).Once()

		// Act
		equipmentHandler.Search()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, service.MessageSearchEmpty, decodeResponse(t, recorder).Message)
	})
}

func TestCreateEquipment(t *testing.T) {
	categoryID := uuid.New()

	t.Run("Success - JSON body with defaults", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		body := `{"name":"  Digital Stethoscope ","description":"Acoustic and digital","categoryId":"` + categoryID.String() + `","price":199.99}`
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/equipment", strings.NewReader(body), uuid.New(), models.RoleAdmin, nil)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		created := &models.Equipment{ID: uuid.New(), Name: "Digital Stethoscope", CategoryID: categoryID}

		mockEquipmentService.On("CreateEquipment", mock.Anything, mock.MatchedBy(func(r *models.CreateEquipmentRequest) bool {
			return r.Name == "Digital Stethoscope" &&
				r.Availability == "In Stock" &&
				r.Condition == "New" &&
				r.IsPublic != nil && *r.IsPublic &&
				r.StockQuantity != nil && *r.StockQuantity == 1
		}), mock.Anything).Return(created, nil).Once()

		// Act
		equipmentHandler.Create()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.True(t, decodeResponse(t, recorder).Success)
		mockEquipmentService.AssertExpectations(t)
	})

	t.Run("Success - multipart with image", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		body, contentType := multipartBody{
			fields: map[string]string{
				"name":        "Surgical Scalpel Set",
				"description": "Stainless steel",
				"categoryId":  categoryID.String(),
				"price":       "299.99",
			},
			files: map[string][]byte{"images": pngHeader},
		}.encode(t)

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/equipment", body, uuid.New(), models.RoleAdmin, nil)
		req.Header.Set("Content-Type", contentType)
		recorder := httptest.NewRecorder()

		mockEquipmentService.On("CreateEquipment", mock.Anything,
			mock.MatchedBy(func(r *models.CreateEquipmentRequest) bool {
				return r.Name == "Surgical Scalpel Set" && r.Price != nil && *r.Price == 299.99
			}),
			mock.MatchedBy(func(files []*media.File) bool {
				return len(files) == 1 && files[0].FieldName == "images" && bytes.Equal(files[0].Data, pngHeader)
			}),
		).Return(&models.Equipment{ID: uuid.New(), Name: "Surgical Scalpel Set"}, nil).Once()

		// Act
		equipmentHandler.Create()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)
		mockEquipmentService.AssertExpectations(t)
	})

	t.Run("Failure - validation", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		body := `{"description":"No name","categoryId":"` + categoryID.String() + `","condition":"Broken"}`
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/equipment", strings.NewReader(body), uuid.New(), models.RoleAdmin, nil)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		equipmentHandler.Create()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Code)
		assert.Contains(t, resp.Errors, "name")
		assert.Contains(t, resp.Errors, "condition")
		mockEquipmentService.AssertNotCalled(t, "CreateEquipment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - empty body", func(t *testing.T) {
		// Arrange
		_, equipmentHandler := setupEquipmentTest()
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/equipment", http.NoBody, uuid.New(), models.RoleAdmin, nil)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		equipmentHandler.Create()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Request body cannot be empty", decodeResponse(t, recorder).Message)
	})

	t.Run("Failure - upload rejected", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		body, contentType := multipartBody{
			fields: map[string]string{"name": "Scalpel", "description": "Steel", "categoryId": categoryID.String()},
			files:  map[string][]byte{"images": []byte("%PDF-1.4 not an image")},
		}.encode(t)

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/equipment", body, uuid.New(), models.RoleAdmin, nil)
		req.Header.Set("Content-Type", contentType)
		recorder := httptest.NewRecorder()

		mockEquipmentService.On("CreateEquipment", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, appErrors.UploadRejectedError(service.MessageNotImage)).Once()

		// Act
		equipmentHandler.Create()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, service.MessageNotImage, decodeResponse(t, recorder).Message)
	})
}

func TestUpdateEquipment(t *testing.T) {
	t.Run("Success - replacement image from image part", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		id := uuid.New()
		body, contentType := multipartBody{
			fields: map[string]string{"isFeatured": "true"},
			files:  map[string][]byte{"image": pngHeader},
		}.encode(t)

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/equipment/"+id.String(), body, uuid.New(), models.RoleAdmin, map[string]string{"id": id.String()})
		req.Header.Set("Content-Type", contentType)
		recorder := httptest.NewRecorder()

		mockEquipmentService.On("UpdateEquipment", mock.Anything, id,
			mock.MatchedBy(func(r *models.UpdateEquipmentRequest) bool {
				return r.IsFeatured != nil && *r.IsFeatured && r.Name == nil
			}),
			mock.MatchedBy(func(f *media.File) bool { return f != nil && f.FieldName == "image" }),
		).Return(&models.Equipment{ID: id, IsFeatured: true}, nil).Once()

		// Act
		equipmentHandler.Update()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockEquipmentService.AssertExpectations(t)
	})

	t.Run("Success - JSON without image", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		id := uuid.New()
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/equipment/"+id.String(), strings.NewReader(`{"availability":"Low Stock"}`), uuid.New(), models.RoleSuperAdmin, map[string]string{"id": id.String()})
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		mockEquipmentService.On("UpdateEquipment", mock.Anything, id, mock.AnythingOfType("*models.UpdateEquipmentRequest"), (*media.File)(nil)).
			Return(&models.Equipment{ID: id, Availability: models.AvailabilityLowStock}, nil).Once()

		// Act
		equipmentHandler.Update()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockEquipmentService.AssertExpectations(t)
	})

	t.Run("Failure - invalid category", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		id := uuid.New()
		body := `{"categoryId":"` + uuid.NewString() + `"}`
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/equipment/"+id.String(), strings.NewReader(body), uuid.New(), models.RoleAdmin, map[string]string{"id": id.String()})
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		mockEquipmentService.On("UpdateEquipment", mock.Anything, id, mock.Anything, mock.Anything).
			Return(nil, appErrors.BadRequestError("Invalid category").WithField("categoryId", "Selected category does not exist")).Once()

		// Act
		equipmentHandler.Update()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.Equal(t, "Invalid category", resp.Message)
		assert.Equal(t, "Selected category does not exist", resp.Errors["categoryId"])
	})
}

func TestDeleteEquipment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		id := uuid.New()
		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/equipment/"+id.String(), nil, uuid.New(), models.RoleAdmin, map[string]string{"id": id.String()})
		recorder := httptest.NewRecorder()

		mockEquipmentService.On("DeleteEquipment", mock.Anything, id).Return(nil).Once()

		// Act
		equipmentHandler.Delete()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.Equal(t, "Equipment deleted successfully", resp.Message)
		assert.Nil(t, resp.Data)
	})

	t.Run("Failure - already retired", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		id := uuid.New()
		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/equipment/"+id.String(), nil, uuid.New(), models.RoleAdmin, map[string]string{"id": id.String()})
		recorder := httptest.NewRecorder()

		mockEquipmentService.On("DeleteEquipment", mock.Anything, id).Return(appErrors.NotFoundError("Equipment not found")).Once()

		// Act
		equipmentHandler.Delete()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestTestUpload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		body, contentType := multipartBody{files: map[string][]byte{"image": pngHeader}}.encode(t)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/equipment/test-upload", body, uuid.New(), models.RoleAdmin, nil)
		req.Header.Set("Content-Type", contentType)
		recorder := httptest.NewRecorder()

		mockEquipmentService.On("TestUpload", mock.Anything, mock.MatchedBy(func(files []*media.File) bool { return len(files) == 1 })).
			Return(&models.UploadedImage{URL: "https://res.cloudinary.com/demo/image/upload/x.png", PublicID: "hafak-surgicals/x"}, nil).Once()

		// Act
		equipmentHandler.TestUpload()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.Equal(t, "Image uploaded successfully", resp.Message)
		assert.Contains(t, recorder.Body.String(), `"publicId":"hafak-surgicals/x"`)
	})

	t.Run("Failure - not multipart", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/equipment/test-upload", strings.NewReader(`{}`), uuid.New(), models.RoleAdmin, nil)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		equipmentHandler.TestUpload()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, service.MessageNoImage, decodeResponse(t, recorder).Message)
		mockEquipmentService.AssertNotCalled(t, "TestUpload", mock.Anything, mock.Anything)
	})

	t.Run("Failure - media host error", func(t *testing.T) {
		// Arrange
		mockEquipmentService, equipmentHandler := setupEquipmentTest()
		body, contentType := multipartBody{files: map[string][]byte{"image": pngHeader}}.encode(t)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/equipment/test-upload", body, uuid.New(), models.RoleAdmin, nil)
		req.Header.Set("Content-Type", contentType)
		recorder := httptest.NewRecorder()

		mockEquipmentService.On("TestUpload", mock.Anything, mock.Anything).
			Return(nil, appErrors.ThirdPartyError(service.MessageUploadFailed).WithError(assert.AnError)).Once()

		// Act
		equipmentHandler.TestUpload()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, service.MessageUploadFailed, decodeResponse(t, recorder).Message)
	})
}

func TestEquipmentStats(t *testing.T) {
	// Arrange
	mockEquipmentService, equipmentHandler := setupEquipmentTest()
	req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/equipment/stats/overview", nil, uuid.New(), models.RoleStaff, nil)
	recorder := httptest.NewRecorder()

	mockEquipmentService.On("EquipmentStats", mock.Anything).
		Return(&models.EquipmentStats{TotalEquipment: 2, InStock: 2, CategoryStats: []models.CategoryCount{}}, nil).Once()

	// Act
	equipmentHandler.Stats()(recorder, req)

	// Assert
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"totalEquipment":2`)
}
