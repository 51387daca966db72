package services

import (
	"net/url"
	"strings"

	"github.com/CPU-commits/Intranet_BDirectorio/funct"
	"github.com/CPU-commits/Intranet_BDirectorio/models"
	"github.com/CPU-commits/Intranet_BDirectorio/repositories"
)

const LIST_PATH = "/"

// ListSelection is the multi-select filter state of the listing page.
type ListSelection struct {
	Instituciones []string
	Cargos        []string
}

// activeValues returns nil when the dimension is unrestricted: nothing
// selected, or the sentinel selected.
func activeValues(selected []string, sentinel string) []string {
	if len(selected) == 0 {
		return nil
	}
	if funct.Some(selected, func(v string) bool { return v == sentinel }) {
		return nil
	}
	return selected
}

func (s ListSelection) Filter() repositories.UsuarioFilter {
	return repositories.UsuarioFilter{
		Instituciones: activeValues(s.Instituciones, models.SENTINEL_INSTITUCION),
		Cargos:        activeValues(s.Cargos, models.SENTINEL_CARGO),
	}
}

// ListURL renders a listing URL for the given selection, institucion params
// first, each dimension in the given order.
func ListURL(instituciones, cargos []string) string {
	var params []string
	for _, v := range instituciones {
		params = append(params, "institucion="+url.QueryEscape(v))
	}
	for _, v := range cargos {
		params = append(params, "cargo="+url.QueryEscape(v))
	}
	if len(params) == 0 {
		return LIST_PATH
	}
	return LIST_PATH + "?" + strings.Join(params, "&")
}

// Chips builds one removal link per distinct selected value. Each link keeps
// the current state minus that value.
func (s ListSelection) Chips() (instituciones []ChipLink, cargos []ChipLink) {
	instituciones, _ = funct.Map(funct.Uniq(s.Instituciones), func(v string) (ChipLink, error) {
		return ChipLink{
			Value: v,
			URL:   ListURL(funct.Without(s.Instituciones, v), s.Cargos),
		}, nil
	})
	cargos, _ = funct.Map(funct.Uniq(s.Cargos), func(v string) (ChipLink, error) {
		return ChipLink{
			Value: v,
			URL:   ListURL(s.Instituciones, funct.Without(s.Cargos, v)),
		}, nil
	})
	return
}

// ExportFilter is the single-valued exact-match filter of the export
// endpoints. Sentinels carry no special meaning here.
type ExportFilter struct {
	Institucion string
	Cargo       string
}

func (e ExportFilter) Filter() repositories.UsuarioFilter {
	var filter repositories.UsuarioFilter
	if e.Institucion != "" {
		filter.Instituciones = []string{e.Institucion}
	}
	if e.Cargo != "" {
		filter.Cargos = []string{e.Cargo}
	}
	return filter
}

// singleValue picks the value the export link can carry: the dimension
// must hold exactly one distinct, non-sentinel value.
func singleValue(selected []string, sentinel string) string {
	values := funct.Uniq(activeValues(selected, sentinel))
	if len(values) != 1 {
		return ""
	}
	return values[0]
}

// ExportFilter narrows the listing state to what the export endpoints
// understand.
func (s ListSelection) ExportFilter() ExportFilter {
	return ExportFilter{
		Institucion: singleValue(s.Instituciones, models.SENTINEL_INSTITUCION),
		Cargo:       singleValue(s.Cargos, models.SENTINEL_CARGO),
	}
}

func (e ExportFilter) URL(path string) string {
	query := url.Values{}
	if e.Institucion != "" {
		query.Set("institucion", e.Institucion)
	}
	if e.Cargo != "" {
		query.Set("cargo", e.Cargo)
	}
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
