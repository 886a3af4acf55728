package gtjiu

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aurevix/gtjiu-client/pkg/apiclient"
)

// Caller is the request normalizer surface the service depends on.
type Caller interface {
	Do(ctx context.Context, req apiclient.Request) (any, error)
	DoInto(ctx context.Context, req apiclient.Request, out any) error
}

// Service exposes the GT Jiu endpoints as typed calls. Every method is a
// single pass-through request; validation happens server-side.
type Service struct {
	api Caller
}

// NewService wraps a normalizer.
func NewService(api Caller) *Service {
	return &Service{api: api}
}

// Register creates a user and returns the session issued for it.
func (s *Service) Register(ctx context.Context, user NewUser) (Session, error) {
	var out Session
	err := s.api.DoInto(ctx, apiclient.Request{Path: "/register", Method: http.MethodPost, Body: user}, &out)
	return result("register", out, err)
}

// Login authenticates with e-mail and password.
func (s *Service) Login(ctx context.Context, creds Credentials) (Session, error) {
	var out Session
	err := s.api.DoInto(ctx, apiclient.Request{Path: "/login", Method: http.MethodPost, Body: creds}, &out)
	return result("login", out, err)
}

// LoginProfessor authenticates a professor. The response carries the token
// and professor data in whatever shape the service returns.
func (s *Service) LoginProfessor(ctx context.Context, email, senha string) (any, error) {
	out, err := s.api.Do(ctx, apiclient.Request{
		Path:   "/professor/login",
		Method: http.MethodPost,
		Body:   Credentials{Email: email, Senha: senha},
	})
	return result("professor login", out, err)
}

// LoginAluno authenticates a student by enrollment code.
func (s *Service) LoginAluno(ctx context.Context, codigo, senha string) (any, error) {
	out, err := s.api.Do(ctx, apiclient.Request{
		Path:   "/aluno/login",
		Method: http.MethodPost,
		Body:   alunoCredentials{Codigo: codigo, Senha: senha},
	})
	return result("aluno login", out, err)
}

// CalcularCategoria asks the service for the age bracket and weight class.
func (s *Service) CalcularCategoria(ctx context.Context, req CategoriaRequest) (CategoriaResponse, error) {
	var out CategoriaResponse
	err := s.api.DoInto(ctx, apiclient.Request{Path: "/categoria", Method: http.MethodPost, Body: req}, &out)
	return result("categoria", out, err)
}

// CriarAcademia registers an academia on behalf of the logged-in professor.
func (s *Service) CriarAcademia(ctx context.Context, token string, in AcademiaInput) (Academia, error) {
	var out Academia
	err := s.api.DoInto(ctx, apiclient.Request{
		Path:       "/academias",
		Method:     http.MethodPost,
		Body:       in,
		Credential: apiclient.Bearer(token),
	}, &out)
	return result("criar academia", out, err)
}

// ListarAcademias lists academias, optionally by cidade and bairro.
func (s *Service) ListarAcademias(ctx context.Context, f AcademiaFilter) ([]Academia, error) {
	var out []Academia
	q := Filter{F("cidade", f.Cidade), F("bairro", f.Bairro)}.query()
	err := s.api.DoInto(ctx, apiclient.Request{Path: "/academias", Method: http.MethodGet, Query: q}, &out)
	return result("listar academias", out, err)
}

// CriarMedalha records a medal for an athlete.
func (s *Service) CriarMedalha(ctx context.Context, token string, in MedalhaInput) (Medalha, error) {
	var out Medalha
	err := s.api.DoInto(ctx, apiclient.Request{
		Path:       "/medalhas",
		Method:     http.MethodPost,
		Body:       in,
		Credential: apiclient.Bearer(token),
	}, &out)
	return result("criar medalha", out, err)
}

// ListarMedalhas lists medals. The service currently filters by academia_id.
func (s *Service) ListarMedalhas(ctx context.Context, f Filter) ([]Medalha, error) {
	var out []Medalha
	err := s.api.DoInto(ctx, apiclient.Request{Path: "/medalhas", Method: http.MethodGet, Query: f.query()}, &out)
	return result("listar medalhas", out, err)
}

// MedalhasDoAluno lists a student's medals.
func (s *Service) MedalhasDoAluno(ctx context.Context, token, alunoID string) (any, error) {
	path, err := idPath("/alunos/%s/medalhas", alunoID)
	if err != nil {
		return nil, wrap("medalhas do aluno", err)
	}
	out, err := s.api.Do(ctx, apiclient.Request{Path: path, Credential: apiclient.Bearer(token)})
	return result("medalhas do aluno", out, err)
}

// RankingAcademias returns academias ordered by medal count.
func (s *Service) RankingAcademias(ctx context.Context, f Filter) ([]RankingAcademia, error) {
	var out []RankingAcademia
	err := s.api.DoInto(ctx, apiclient.Request{Path: "/ranking/academias", Method: http.MethodGet, Query: f.query()}, &out)
	return result("ranking academias", out, err)
}

// RankingProfessor returns the ranking of a professor's students.
func (s *Service) RankingProfessor(ctx context.Context, token, professorID string) (any, error) {
	path, err := idPath("/professores/%s/ranking", professorID)
	if err != nil {
		return nil, wrap("ranking professor", err)
	}
	out, err := s.api.Do(ctx, apiclient.Request{Path: path, Credential: apiclient.Bearer(token)})
	return result("ranking professor", out, err)
}

// CriarAviso posts an announcement.
func (s *Service) CriarAviso(ctx context.Context, token string, in AvisoInput) (any, error) {
	out, err := s.api.Do(ctx, apiclient.Request{
		Path:       "/avisos",
		Method:     http.MethodPost,
		Body:       in,
		Credential: apiclient.Bearer(token),
	})
	return result("criar aviso", out, err)
}

// ListarAvisos lists announcements. token may be empty.
func (s *Service) ListarAvisos(ctx context.Context, token string, f Filter) (any, error) {
	out, err := s.api.Do(ctx, apiclient.Request{
		Path:       "/avisos",
		Query:      f.query(),
		Credential: apiclient.Bearer(token),
	})
	return result("listar avisos", out, err)
}

// ListarAvisosProfessor lists the announcements posted by one professor.
func (s *Service) ListarAvisosProfessor(ctx context.Context, token, professorID string) (any, error) {
	path, err := idPath("/professores/%s/avisos", professorID)
	if err != nil {
		return nil, wrap("avisos do professor", err)
	}
	out, err := s.api.Do(ctx, apiclient.Request{Path: path, Credential: apiclient.Bearer(token)})
	return result("avisos do professor", out, err)
}

// result drops whatever the call produced when it failed.
func result[T any](op string, out T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, wrap(op, err)
	}
	return out, nil
}

func idPath(format, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("id is required")
	}
	return fmt.Sprintf(format, url.PathEscape(id)), nil
}

// wrap prefixes transport failures with the operation. Application errors
// pass through unchanged so their message stays the service's own text.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
