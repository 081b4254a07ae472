package dto

import "github.com/hugh/orgspace/internal/database/models"

type CreateOrganisationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type AddMemberRequest struct {
	UserID string `json:"userId"`
}

type OrganisationDTO struct {
	OrgID       string `json:"orgId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type OrganisationListData struct {
	Organisations []OrganisationDTO `json:"organisations"`
}

func NewOrganisationDTO(o *models.Organisation) OrganisationDTO {
	return OrganisationDTO{
		OrgID:       o.ID.String(),
		Name:        o.Name,
		Description: o.Description,
	}
}
