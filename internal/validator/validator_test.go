package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ommivivekanandsai/EduFolio/internal/services/dto"
)

func validRequest() dto.SavePortfolioRequest {
	return dto.SavePortfolioRequest{
		Name:         "Jordan Example",
		ProfileImage: "data:image/jpeg;base64,aGVsbG8=",
		About:        "A short personal introduction.",
		Academics:    "BSc Computer Science, 2024.",
		Projects:     "Built a campus event planner and a course tracker.",
		Skills:       "go,sql,docker",
		Certificates: []dto.CertificateRequest{
			{
				Name:        "AWS Cloud Practitioner",
				File:        "data:application/pdf;base64,aGVsbG8=",
				Description: "Foundational cloud certification.",
			},
		},
	}
}

func TestValidateSavePortfolioRequest(t *testing.T) {
	v := New()

	t.Run("valid payload passes", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, v.Validate(&req))
	})

	t.Run("two character name is blocked with a name error", func(t *testing.T) {
		req := validRequest()
		req.Name = "Jo"

		err := v.Validate(&req)
		vErr, ok := err.(*ValidationError)
		assert.True(t, ok)
		assert.Contains(t, vErr.Errors, "name")
	})

	t.Run("field length bounds", func(t *testing.T) {
		cases := []struct {
			field  string
			mutate func(*dto.SavePortfolioRequest)
		}{
			{"name", func(r *dto.SavePortfolioRequest) { r.Name = strings.Repeat("a", 51) }},
			{"about", func(r *dto.SavePortfolioRequest) { r.About = "too short" }},
			{"about", func(r *dto.SavePortfolioRequest) { r.About = strings.Repeat("a", 501) }},
			{"academics", func(r *dto.SavePortfolioRequest) { r.Academics = "short" }},
			{"projects", func(r *dto.SavePortfolioRequest) { r.Projects = strings.Repeat("a", 1001) }},
			{"skills", func(r *dto.SavePortfolioRequest) { r.Skills = "x" }},
			{"skills", func(r *dto.SavePortfolioRequest) { r.Skills = strings.Repeat("a", 301) }},
		}

		for _, tc := range cases {
			req := validRequest()
			tc.mutate(&req)

			err := v.Validate(&req)
			vErr, ok := err.(*ValidationError)
			assert.True(t, ok, "expected validation error for %s", tc.field)
			assert.Contains(t, vErr.Errors, tc.field)
		}
	})

	t.Run("required fields", func(t *testing.T) {
		req := validRequest()
		req.ProfileImage = ""
		req.About = ""

		err := v.Validate(&req)
		vErr, ok := err.(*ValidationError)
		assert.True(t, ok)
		assert.Contains(t, vErr.Errors, "profile_image")
		assert.Contains(t, vErr.Errors, "about")
	})

	t.Run("skills must be a comma separated list", func(t *testing.T) {
		req := validRequest()
		req.Skills = "go,,sql"

		err := v.Validate(&req)
		vErr, ok := err.(*ValidationError)
		assert.True(t, ok)
		assert.Contains(t, vErr.Errors, "skills")
	})

	t.Run("certificate fields are validated per entry", func(t *testing.T) {
		req := validRequest()
		req.Certificates = append(req.Certificates, dto.CertificateRequest{
			Name:        "Second Cert",
			File:        "data:application/pdf;base64,aGVsbG8=",
			Description: "ab", // below minimum
		})

		err := v.Validate(&req)
		vErr, ok := err.(*ValidationError)
		assert.True(t, ok)
		assert.Contains(t, vErr.Errors, "description")
	})

	t.Run("file fields accept data URIs and URLs only", func(t *testing.T) {
		req := validRequest()
		req.ProfileImage = "not-a-file-reference"

		err := v.Validate(&req)
		vErr, ok := err.(*ValidationError)
		assert.True(t, ok)
		assert.Contains(t, vErr.Errors, "profile_image")

		req = validRequest()
		req.ProfileImage = "https://cdn.example.com/p/profile.jpg"
		assert.NoError(t, v.Validate(&req))
	})
}
