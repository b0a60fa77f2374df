package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/slots-pg/dashboard-api/internal/domain"
)

const (
	MinPorcentagem = 50
	MaxPorcentagem = 98
)

var (
	ErrInvalidPlayerCount = errors.New("Invalid player count")
)

type CreateSlotRequest struct {
	Nome        string `json:"nome"`
	Categoria   string `json:"categoria"`
	Imagem      string `json:"imagem"`
	Porcentagem *int   `json:"porcentagem"`
	Jogadores   *int   `json:"jogadores"`
}

func (req *CreateSlotRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nome, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Categoria, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Imagem, validation.Required, is.URL),
		validation.Field(&req.Porcentagem, validation.Required, validation.Min(MinPorcentagem), validation.Max(MaxPorcentagem)),
		validation.Field(&req.Jogadores, validation.NotNil, validation.Min(0)),
	)
}

// ToDomain must only be called after Validate succeeded.
func (req *CreateSlotRequest) ToDomain() domain.Slot {
	return domain.Slot{
		Nome:        req.Nome,
		Categoria:   req.Categoria,
		Imagem:      req.Imagem,
		Porcentagem: *req.Porcentagem,
		Jogadores:   *req.Jogadores,
	}
}

type UpdateSlotRequest struct {
	CreateSlotRequest
	Ativo *bool `json:"ativo"`
}

func (req *UpdateSlotRequest) Validate() error {
	return req.CreateSlotRequest.Validate()
}

func (req *UpdateSlotRequest) ToPatch() domain.SlotPatch {
	return domain.SlotPatch{
		Nome:        &req.Nome,
		Categoria:   &req.Categoria,
		Imagem:      &req.Imagem,
		Porcentagem: req.Porcentagem,
		Jogadores:   req.Jogadores,
		Ativo:       req.Ativo,
	}
}

type UpdatePlayersRequest struct {
	Jogadores *int `json:"jogadores"`
}

func (req *UpdatePlayersRequest) Validate() error {
	if req.Jogadores == nil || *req.Jogadores < 0 {
		return ErrInvalidPlayerCount
	}

	return nil
}
