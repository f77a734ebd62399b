package domain

// SoilStudy is a soil-study record as stored by the backend. The id and
// timestamps are server-assigned.
type SoilStudy struct {
	ID             string   `json:"id,omitempty"`
	Name           string   `json:"name"`
	DateOfStudy    string   `json:"date_of_study"`
	LocationName   string   `json:"location_name"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Notes          string   `json:"notes,omitempty"`
	Region         string   `json:"region"`
	LaboratoryName *string  `json:"laboratory_name,omitempty"`
	AnalysisDate   *string  `json:"analysis_date,omitempty"`
	SampleNumber   int      `json:"sample_number"`
	CreatedAt      string   `json:"created_at,omitempty"`
	UpdatedAt      string   `json:"updated_at,omitempty"`
	IsActive       bool     `json:"is_active,omitempty"`
}

// Macronutrients holds N-P-K plus secondary macronutrient measurements for a
// study, in the units reported by the laboratory.
type Macronutrients struct {
	ID         string  `json:"id,omitempty"`
	StudyID    string  `json:"study,omitempty"`
	Nitrogen   float64 `json:"nitrogen"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`
	Calcium    float64 `json:"calcium,omitempty"`
	Magnesium  float64 `json:"magnesium,omitempty"`
	Sulfur     float64 `json:"sulfur,omitempty"`
	CreatedAt  string  `json:"created_at,omitempty"`
}

// Micronutrients holds trace-element measurements for a study.
type Micronutrients struct {
	ID        string  `json:"id,omitempty"`
	StudyID   string  `json:"study,omitempty"`
	Iron      float64 `json:"iron"`
	Manganese float64 `json:"manganese"`
	Zinc      float64 `json:"zinc"`
	Copper    float64 `json:"copper"`
	Boron     float64 `json:"boron,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// PhysicalProperties describes soil texture and structure for a study.
type PhysicalProperties struct {
	ID          string  `json:"id,omitempty"`
	StudyID     string  `json:"study,omitempty"`
	SandPercent float64 `json:"sand_percent"`
	SiltPercent float64 `json:"silt_percent"`
	ClayPercent float64 `json:"clay_percent"`
	Texture     string  `json:"texture,omitempty"`
	BulkDensity float64 `json:"bulk_density,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// OrganicMatter holds the organic matter measurement for a study.
type OrganicMatter struct {
	ID            string  `json:"id,omitempty"`
	StudyID       string  `json:"study,omitempty"`
	Percentage    float64 `json:"percentage"`
	OrganicCarbon float64 `json:"organic_carbon,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

// PhLevel holds the pH measurement for a study.
type PhLevel struct {
	ID             string  `json:"id,omitempty"`
	StudyID        string  `json:"study,omitempty"`
	Value          float64 `json:"value"`
	Classification string  `json:"classification,omitempty"`
	CreatedAt      string  `json:"created_at,omitempty"`
}

// SpecialAnalyses holds free-form laboratory analyses for a study.
type SpecialAnalyses struct {
	ID           string  `json:"id,omitempty"`
	StudyID      string  `json:"study,omitempty"`
	Salinity     float64 `json:"salinity,omitempty"`
	Conductivity float64 `json:"conductivity,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
}
