package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ingver/rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// KeyHandler defines the interface for handling key-related operations
type KeyHandler interface {
	GenerateKeys(ctx *gin.Context)
	GenerateBatch(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DownloadPublicByID(ctx *gin.Context)
	DownloadPrivateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// keyHandler struct holds the services
type keyHandler struct {
	keyGenerationService keys.KeyGenerationService
	keyDownloadService   keys.KeyDownloadService
	keyMetadataService   keys.KeyMetadataService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyGenerationService keys.KeyGenerationService, keyDownloadService keys.KeyDownloadService, keyMetadataService keys.KeyMetadataService) KeyHandler {
	return &keyHandler{
		keyGenerationService: keyGenerationService,
		keyDownloadService:   keyDownloadService,
		keyMetadataService:   keyMetadataService,
	}
}

// GenerateKeys handles the POST request to generate and store an RSA key pair
// @Summary Generate an RSA key pair
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Key size in bits"
// @Success 201 {object} KeyPairResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) GenerateKeys(ctx *gin.Context) {
	var request GenerateKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key data: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	record, err := handler.keyGenerationService.Generate(ctx, request.KeySize)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error generating key: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, newKeyPairResponse(record))
}

// GenerateBatch handles the POST request to generate several RSA key pairs at once
// @Summary Generate a batch of RSA key pairs
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateBatchRequest true "Key size and count"
// @Success 201 {array} KeyPairResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys/batch [post]
func (handler *keyHandler) GenerateBatch(ctx *gin.Context) {
	var request GenerateBatchRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid batch data: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	records, err := handler.keyGenerationService.GenerateBatch(ctx, request.KeySize, request.Count)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error generating keys: %v", err)})
		return
	}

	listResponse := make([]KeyPairResponse, 0, len(records))
	for _, record := range records {
		listResponse = append(listResponse, newKeyPairResponse(record))
	}

	ctx.JSON(http.StatusCreated, listResponse)
}

// ListMetadata handles the GET request to list stored key pairs with optional query parameters
// @Summary List stored key pairs
// @Tags Key
// @Produce json
// @Param keySize query int false "Modulus size in bits"
// @Param dateTimeCreated query string false "Created at or after (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by id, key_size or date_time_created"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeyPairResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := keys.NewKeyRecordQuery()

	intParams := map[string]*int{
		"keySize": &query.KeySize,
		"limit":   &query.Limit,
		"offset":  &query.Offset,
	}
	for name, target := range intParams {
		value := ctx.Query(name)
		if len(value) == 0 {
			continue
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid %s: %q", name, value)})
			return
		}
		*target = parsed
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err == nil {
			query.DateTimeCreated = parsedTime
		}
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	records, err := handler.keyMetadataService.List(ctx, query)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := []KeyPairResponse{}
	for _, record := range records {
		listResponse = append(listResponse, newKeyPairResponse(record))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve a key pair by ID
// @Summary Retrieve a stored key pair by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} KeyPairResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	record, err := handler.keyMetadataService.GetByID(ctx, keyID)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("could not get key with id %s: %v", keyID, err)})
		return
	}

	ctx.JSON(http.StatusOK, newKeyPairResponse(record))
}

// DownloadPublicByID handles the GET request to download the public key file
// @Summary Download the (e, n) key file
// @Tags Key
// @Produce plain
// @Param id path string true "Key ID"
// @Success 200 {file} file "Two decimal lines: exponent and modulus"
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/public [get]
func (handler *keyHandler) DownloadPublicByID(ctx *gin.Context) {
	handler.download(ctx, keys.KeyHalfPublic)
}

// DownloadPrivateByID handles the GET request to download the private key file
// @Summary Download the (d, n) key file
// @Tags Key
// @Produce plain
// @Param id path string true "Key ID"
// @Success 200 {file} file "Two decimal lines: exponent and modulus"
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/private [get]
func (handler *keyHandler) DownloadPrivateByID(ctx *gin.Context) {
	handler.download(ctx, keys.KeyHalfPrivate)
}

func (handler *keyHandler) download(ctx *gin.Context, half keys.KeyHalf) {
	keyID := ctx.Param("id")

	data, err := handler.keyDownloadService.DownloadByID(ctx, keyID, half)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("could not download key with id %s: %v", keyID, err)})
		return
	}

	filename := fmt.Sprintf("%s-rsa-%s.key", keyID, half)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", data)
}

// DeleteByID handles the DELETE request to delete a key pair by ID
// @Summary Delete a stored key pair by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	if err := handler.keyMetadataService.DeleteByID(ctx, keyID); err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error deleting key with id %s: %v", keyID, err)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted key with id %s", keyID)})
}
