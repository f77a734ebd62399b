package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/agromaps/agromaps-go/internal/client/domain"
)

// Soil-study CRUD. The backend keeps a trailing slash on item and create
// paths; the listing endpoint has none. Preserved as-is so routing doesn't
// depend on server-side redirects.

// ListStudies returns the caller's soil studies.
func (c *Client) ListStudies(ctx context.Context) ([]domain.SoilStudy, error) {
	var out []domain.SoilStudy
	if err := c.doJSON(ctx, http.MethodGet, "/soil-studies/studies", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateStudy creates a soil study and returns the record with its
// server-assigned id and timestamps.
func (c *Client) CreateStudy(ctx context.Context, study domain.SoilStudy) (*domain.SoilStudy, error) {
	var out domain.SoilStudy
	if err := c.doJSON(ctx, http.MethodPost, "/soil-studies/studies/", study, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStudy fetches a study by id.
func (c *Client) GetStudy(ctx context.Context, id string) (*domain.SoilStudy, error) {
	var out domain.SoilStudy
	if err := c.doJSON(ctx, http.MethodGet, studyPath(id, ""), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStudy applies a partial update to a study.
func (c *Client) UpdateStudy(ctx context.Context, id string, study domain.SoilStudy) (*domain.SoilStudy, error) {
	var out domain.SoilStudy
	if err := c.doJSON(ctx, http.MethodPatch, studyPath(id, ""), study, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReactivateStudy restores a soft-deleted study.
func (c *Client) ReactivateStudy(ctx context.Context, id string) (*domain.SoilStudy, error) {
	var out domain.SoilStudy
	body := map[string]bool{"is_active": true}
	if err := c.doJSON(ctx, http.MethodPatch, studyPath(id, "reactivate"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteStudy soft-deletes a study.
func (c *Client) DeleteStudy(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, studyPath(id, ""), nil, nil)
}

// ============================================================================
// Per-study laboratory analyses
// ============================================================================

// ListMacronutrients returns the macronutrient measurements for a study.
func (c *Client) ListMacronutrients(ctx context.Context, studyID string) ([]domain.Macronutrients, error) {
	var out []domain.Macronutrients
	if err := c.doJSON(ctx, http.MethodGet, studyPath(studyID, "macronutrients"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMacronutrients records macronutrient measurements for a study.
func (c *Client) CreateMacronutrients(ctx context.Context, studyID string, m domain.Macronutrients) (*domain.Macronutrients, error) {
	var out domain.Macronutrients
	if err := c.doJSON(ctx, http.MethodPost, studyPath(studyID, "macronutrients"), m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMicronutrients returns the micronutrient measurements for a study.
func (c *Client) ListMicronutrients(ctx context.Context, studyID string) ([]domain.Micronutrients, error) {
	var out []domain.Micronutrients
	if err := c.doJSON(ctx, http.MethodGet, studyPath(studyID, "micronutrients"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMicronutrients records micronutrient measurements for a study.
func (c *Client) CreateMicronutrients(ctx context.Context, studyID string, m domain.Micronutrients) (*domain.Micronutrients, error) {
	var out domain.Micronutrients
	if err := c.doJSON(ctx, http.MethodPost, studyPath(studyID, "micronutrients"), m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPhysicalProperties returns the texture/structure record for a study.
func (c *Client) GetPhysicalProperties(ctx context.Context, studyID string) (*domain.PhysicalProperties, error) {
	var out domain.PhysicalProperties
	if err := c.doJSON(ctx, http.MethodGet, studyPath(studyID, "physical-properties"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePhysicalProperties records texture/structure for a study.
func (c *Client) CreatePhysicalProperties(ctx context.Context, studyID string, p domain.PhysicalProperties) (*domain.PhysicalProperties, error) {
	var out domain.PhysicalProperties
	if err := c.doJSON(ctx, http.MethodPost, studyPath(studyID, "physical-properties"), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrganicMatter returns the organic-matter record for a study.
func (c *Client) GetOrganicMatter(ctx context.Context, studyID string) (*domain.OrganicMatter, error) {
	var out domain.OrganicMatter
	if err := c.doJSON(ctx, http.MethodGet, studyPath(studyID, "organic-matter"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrganicMatter records organic matter for a study.
func (c *Client) CreateOrganicMatter(ctx context.Context, studyID string, o domain.OrganicMatter) (*domain.OrganicMatter, error) {
	var out domain.OrganicMatter
	if err := c.doJSON(ctx, http.MethodPost, studyPath(studyID, "organic-matter"), o, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPhLevel returns the pH record for a study.
func (c *Client) GetPhLevel(ctx context.Context, studyID string) (*domain.PhLevel, error) {
	var out domain.PhLevel
	if err := c.doJSON(ctx, http.MethodGet, studyPath(studyID, "ph-level"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePhLevel records the pH measurement for a study.
func (c *Client) CreatePhLevel(ctx context.Context, studyID string, p domain.PhLevel) (*domain.PhLevel, error) {
	var out domain.PhLevel
	if err := c.doJSON(ctx, http.MethodPost, studyPath(studyID, "ph-level"), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSpecialAnalyses returns the special-analyses record for a study.
func (c *Client) GetSpecialAnalyses(ctx context.Context, studyID string) (*domain.SpecialAnalyses, error) {
	var out domain.SpecialAnalyses
	if err := c.doJSON(ctx, http.MethodGet, studyPath(studyID, "special-analyses"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSpecialAnalyses records special analyses for a study.
func (c *Client) CreateSpecialAnalyses(ctx context.Context, studyID string, s domain.SpecialAnalyses) (*domain.SpecialAnalyses, error) {
	var out domain.SpecialAnalyses
	if err := c.doJSON(ctx, http.MethodPost, studyPath(studyID, "special-analyses"), s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// studyPath builds "/soil-studies/studies/{id}/" or a sub-resource path under
// it, keeping the backend's trailing slashes.
func studyPath(id, sub string) string {
	if sub == "" {
		return fmt.Sprintf("/soil-studies/studies/%s/", id)
	}
	return fmt.Sprintf("/soil-studies/studies/%s/%s/", id, sub)
}
