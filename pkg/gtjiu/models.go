package gtjiu

import (
	"fmt"
	"strings"
	"time"
)

// NewUser is the registration payload.
type NewUser struct {
	Nome  string `json:"nome" yaml:"nome"`
	Email string `json:"email" yaml:"email"`
	Senha string `json:"senha" yaml:"-"`
}

// Credentials is the canonical login payload.
type Credentials struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Session is returned by /register and /login.
type Session struct {
	Message string `json:"message" yaml:"message"`
	Token   string `json:"token" yaml:"token"`
	Nome    string `json:"nome" yaml:"nome"`
}

type alunoCredentials struct {
	Codigo string `json:"codigo"`
	Senha  string `json:"senha"`
}

// CategoriaRequest asks the service for the age and weight division.
// Sexo is "M" or "F".
type CategoriaRequest struct {
	Idade int     `json:"idade"`
	Peso  float64 `json:"peso"`
	Sexo  string  `json:"sexo"`
}

// CategoriaResponse names the division computed by the service.
type CategoriaResponse struct {
	FaixaEtaria   string  `json:"faixa_etaria" yaml:"faixa_etaria"`
	CategoriaPeso string  `json:"categoria_peso" yaml:"categoria_peso"`
	Observacao    *string `json:"observacao,omitempty" yaml:"observacao,omitempty"`
}

// AcademiaInput holds the fields accepted when registering an academia.
type AcademiaInput struct {
	Nome     string `json:"nome" yaml:"nome"`
	Mestre   string `json:"mestre" yaml:"mestre"`
	Cidade   string `json:"cidade" yaml:"cidade"`
	Bairro   string `json:"bairro" yaml:"bairro"`
	Telefone string `json:"telefone" yaml:"telefone"`
	Endereco string `json:"endereco" yaml:"endereco"`
	Email    string `json:"email" yaml:"email"`
}

// Academia is a registered academia as returned by the service.
type Academia struct {
	ID            int `json:"id" yaml:"id"`
	AcademiaInput `yaml:",inline"`
}

// AcademiaFilter narrows ListarAcademias. Empty fields are not sent.
type AcademiaFilter struct {
	Cidade string
	Bairro string
}

// MedalhaInput holds the fields accepted when recording a medal.
type MedalhaInput struct {
	AcademiaID           int     `json:"academia_id" yaml:"academia_id"`
	Faixa                string  `json:"faixa" yaml:"faixa"`
	Sexo                 string  `json:"sexo" yaml:"sexo"`
	CategoriaPeso        string  `json:"categoria_peso" yaml:"categoria_peso"`
	TipoMedalha          string  `json:"tipo_medalha" yaml:"tipo_medalha"`
	Campeonato           string  `json:"campeonato" yaml:"campeonato"`
	CidadeEvento         string  `json:"cidade_evento" yaml:"cidade_evento"`
	DataEvento           Date    `json:"data_evento" yaml:"data_evento"`
	ComprovanteDescricao *string `json:"comprovante_descricao,omitempty" yaml:"comprovante_descricao,omitempty"`
}

// Medalha is a recorded medal.
type Medalha struct {
	ID              int    `json:"id" yaml:"id"`
	StatusValidacao string `json:"status_validacao" yaml:"status_validacao"`
	MedalhaInput    `yaml:",inline"`
}

// RankingAcademia is one row of the academia medal ranking.
type RankingAcademia struct {
	AcademiaID   int    `json:"academia_id" yaml:"academia_id"`
	NomeAcademia string `json:"nome_academia" yaml:"nome_academia"`
	Ouro         int    `json:"ouro" yaml:"ouro"`
	Prata        int    `json:"prata" yaml:"prata"`
	Bronze       int    `json:"bronze" yaml:"bronze"`
	Total        int    `json:"total" yaml:"total"`
}

// AvisoInput is an announcement posted by a professor.
type AvisoInput struct {
	Titulo string `json:"titulo"`
	Texto  string `json:"texto"`
}

const dateLayout = "2006-01-02"

// Date is a calendar day encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML renders the day the same way as JSON.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}
