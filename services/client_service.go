package services

import (
	"errors"

	"github.com/ajshan23/alghazal-b-p/apperrors"
	"github.com/ajshan23/alghazal-b-p/dto"
	"github.com/ajshan23/alghazal-b-p/models"
	"github.com/ajshan23/alghazal-b-p/repositories"
	"gorm.io/gorm"
)

// ClientService handles business logic for clients
type ClientService struct {
	clientRepo *repositories.ClientRepository
}

// NewClientService creates a new client service instance
func NewClientService() *ClientService {
	return &ClientService{
		clientRepo: repositories.NewClientRepository(),
	}
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(req dto.CreateClientRequest) (models.Client, error) {
	client := models.Client{
		ClientName: req.ClientName,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		TRN:        req.TRN,
	}
	return s.clientRepo.Create(client)
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(clientID string) (models.Client, error) {
	client, err := s.clientRepo.FindByID(clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Client{}, apperrors.NotFoundf("client %s", clientID)
		}
		return models.Client{}, err
	}
	return client, nil
}

// UpdateClient updates an existing client
func (s *ClientService) UpdateClient(clientID string, req dto.UpdateClientRequest) (models.Client, error) {
	client, err := s.GetClient(clientID)
	if err != nil {
		return models.Client{}, err
	}

	if req.ClientName != "" {
		client.ClientName = req.ClientName
	}
	if req.Email != "" {
		client.Email = req.Email
	}
	if req.Phone != "" {
		client.Phone = req.Phone
	}
	if req.Address != "" {
		client.Address = req.Address
	}
	if req.TRN != "" {
		client.TRN = req.TRN
	}

	if err := s.clientRepo.Update(client); err != nil {
		return models.Client{}, err
	}

	return client, nil
}

// DeleteClient removes a client that has no projects
func (s *ClientService) DeleteClient(clientID string) error {
	if _, err := s.GetClient(clientID); err != nil {
		return err
	}

	count, err := s.clientRepo.CountProjects(clientID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.PreconditionFailedf("client has %d projects and cannot be deleted", count)
	}

	return s.clientRepo.Delete(clientID)
}

// ListClients retrieves clients with pagination and search
func (s *ClientService) ListClients(page, pageSize int, search string) (dto.ClientListResponse, error) {
	var response dto.ClientListResponse

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	clients, totalCount, err := s.clientRepo.FindWithPagination(page, pageSize, search)
	if err != nil {
		return response, err
	}

	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	response = dto.ClientListResponse{
		Clients:    clients,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}

	return response, nil
}
