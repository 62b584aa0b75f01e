package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Consultar CEP
// @Description Busca logradouro, bairro e cidade no ViaCEP para preencher o cadastro
// @Tags Endereços
// @Produce json
// @Param cep path string true "CEP (8 dígitos)"
// @Success 200 {object} domain.CEPLookup "Endereço encontrado"
// @Failure 404 {object} errorResponseBody "CEP não encontrado"
// @Router /enderecos/cep/{cep} [get]
func (h *Handler) lookupCEP(c *gin.Context) {
	lookup, err := h.services.Address.LookupCEP(c.Request.Context(), c.Param("cep"))
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, lookup)
}
