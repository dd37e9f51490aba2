package docgen_test

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	buildingmodels "rentora/internal/building/models"
	"rentora/internal/docgen"
	"rentora/internal/docgen/docx"
	"rentora/internal/docgen/mocks"
	ownermodels "rentora/internal/owner/models"
	"rentora/internal/platform/scope"
	tenantmodels "rentora/internal/tenant/models"
	dErrors "rentora/pkg/domain-errors"
	"rentora/pkg/platform/sentinel"
)

type ServiceSuite struct {
	suite.Suite

	ctrl      *gomock.Controller
	templates *mocks.MockTemplateStore
	outputs   *mocks.MockOutputStore
	tenants   *mocks.MockTenantSource
	owners    *mocks.MockOwnerSource
	buildings *mocks.MockBuildingSource
	service   *docgen.Service

	caller   scope.Scope
	owner    *ownermodels.Owner
	building *buildingmodels.Building
	tenant   *tenantmodels.Tenant
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.templates = mocks.NewMockTemplateStore(s.ctrl)
	s.outputs = mocks.NewMockOutputStore(s.ctrl)
	s.tenants = mocks.NewMockTenantSource(s.ctrl)
	s.owners = mocks.NewMockOwnerSource(s.ctrl)
	s.buildings = mocks.NewMockBuildingSource(s.ctrl)
	s.service = docgen.NewService(s.templates, s.outputs, s.tenants, s.owners, s.buildings)

	accountID := uuid.New()
	s.caller = scope.Scope{AccountID: accountID}

	var err error
	s.owner, err = ownermodels.NewOwner(uuid.New(), accountID, "Ramesh Rao")
	s.Require().NoError(err)
	s.owner.Address = "12 MG Road, Bengaluru"
	s.Require().NoError(s.owner.SetAadhaar("123456789012"))

	s.building, err = buildingmodels.NewBuilding(uuid.New(), s.owner.ID, accountID, "Lake View", buildingmodels.CategoryResidence, 4)
	s.Require().NoError(err)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s.tenant, err = tenantmodels.NewTenant(uuid.New(), s.building.ID, s.owner.ID, accountID, "Asha Verma", start, start.AddDate(1, 0, 0))
	s.Require().NoError(err)
	s.Require().NoError(s.tenant.SetRent(15000, 500, 300, 50000, 5))
	s.tenant.Address = "4 Lake View, Mysuru"
}

func (s *ServiceSuite) expectLookups() {
	s.tenants.EXPECT().Get(gomock.Any(), s.caller, s.tenant.ID).Return(s.tenant, nil)
	s.owners.EXPECT().Get(gomock.Any(), s.caller, s.owner.ID).Return(s.owner, nil)
	s.buildings.EXPECT().Get(gomock.Any(), s.caller, s.building.ID).Return(s.building, nil)
}

func (s *ServiceSuite) TestGenerateHappyPath() {
	s.expectLookups()
	s.templates.EXPECT().Template("residence").Return(templateArchive(s.T(),
		"Dear {TENANT_NAME}, rent is {TOTAL_RENT} ({TOTAL_RENT_IN_WORDS})"), nil)

	var savedName string
	var savedData []byte
	s.outputs.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(name string, data []byte) (string, error) {
			savedName = name
			savedData = data
			return name, nil
		})

	result, err := s.service.Generate(s.T().Context(), s.caller, s.tenant.ID, docgen.Overrides{})
	s.Require().NoError(err)

	expected := fmt.Sprintf("agreement_asha_verma_%s.docx", time.Now().Format("2006-01-02"))
	s.Equal(expected, result.Filename)
	s.Equal("outputs/"+expected, savedName)
	s.Equal(result.Data, savedData)

	doc, err := docx.Read(result.Data)
	s.Require().NoError(err)
	s.Equal("Dear Asha Verma, rent is 15,800 (Fifteen Thousand Eight Hundred)", doc.Paragraphs[0].Text())
}

func (s *ServiceSuite) TestGenerateTemplateMissing() {
	s.expectLookups()
	s.templates.EXPECT().Template("residence").Return(nil, sentinel.ErrNotFound)

	_, err := s.service.Generate(s.T().Context(), s.caller, s.tenant.ID, docgen.Overrides{})
	s.Require().Error(err)
	s.Equal(dErrors.CodeNotFound, dErrors.CodeOf(err))
	s.Contains(err.Error(), "residence")
}

func (s *ServiceSuite) TestGenerateCorruptTemplate() {
	s.expectLookups()
	s.templates.EXPECT().Template("residence").Return([]byte("not a zip archive"), nil)

	_, err := s.service.Generate(s.T().Context(), s.caller, s.tenant.ID, docgen.Overrides{})
	s.Require().Error(err)
	s.Equal(dErrors.CodeInvalidState, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestGenerateRejectsBadOverridesBeforeAnyLookup() {
	_, err := s.service.Generate(s.T().Context(), s.caller, s.tenant.ID, docgen.Overrides{OwnerAadhaar: "12345"})
	s.Require().Error(err)
	s.Equal(dErrors.CodeValidation, dErrors.CodeOf(err))

	_, err = s.service.Generate(s.T().Context(), s.caller, s.tenant.ID, docgen.Overrides{TenantAddress: "short"})
	s.Require().Error(err)
	s.Equal(dErrors.CodeValidation, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestGenerateTenantNotFound() {
	s.tenants.EXPECT().Get(gomock.Any(), s.caller, s.tenant.ID).
		Return(nil, dErrors.New(dErrors.CodeNotFound, "tenant not found"))

	_, err := s.service.Generate(s.T().Context(), s.caller, s.tenant.ID, docgen.Overrides{})
	s.Require().Error(err)
	s.Equal(dErrors.CodeNotFound, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestGenerateDoesNotPersistOnSaveFailure() {
	s.expectLookups()
	s.templates.EXPECT().Template("residence").Return(templateArchive(s.T(), "{TENANT_NAME}"), nil)
	s.outputs.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("disk full"))

	_, err := s.service.Generate(s.T().Context(), s.caller, s.tenant.ID, docgen.Overrides{})
	s.Require().Error(err)
	s.Equal(dErrors.CodeInternal, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestGenerateAppliesOverrides() {
	s.owner.Aadhaar = ""
	s.expectLookups()
	s.templates.EXPECT().Template("residence").Return(templateArchive(s.T(), "Aadhar: {OWNER_AADHAR}"), nil)
	s.outputs.EXPECT().Save(gomock.Any(), gomock.Any()).Return("saved", nil)

	result, err := s.service.Generate(s.T().Context(), s.caller, s.tenant.ID, docgen.Overrides{OwnerAadhaar: "111122223333"})
	s.Require().NoError(err)

	doc, err := docx.Read(result.Data)
	s.Require().NoError(err)
	s.Equal("Aadhar: 111122223333", doc.Paragraphs[0].Text())
	s.Empty(s.owner.Aadhaar)
}

func (s *ServiceSuite) TestPreview() {
	s.expectLookups()

	preview, err := s.service.Preview(s.T().Context(), s.caller, s.tenant.ID)
	s.Require().NoError(err)

	s.Equal("Ramesh Rao", preview.Owner.Name)
	s.True(preview.Owner.HasAadhaar)
	s.Equal("Asha Verma", preview.Tenant.Name)
	s.True(preview.Tenant.HasAddress)
	s.Equal("residence", preview.Building.Category)
	s.Equal("15,800", preview.Rent.Total)
	s.Equal("Fifteen Thousand Eight Hundred", preview.Rent.TotalWords)
	s.Equal("Water and Maintenance Charges", preview.Rent.ExtraLabel)
	s.Equal("01-06-2025", preview.Agreement.StartDate)
	s.Equal("1 Year", preview.Agreement.Duration)
}

func (s *ServiceSuite) TestPreviewFlagsMissingOptionalFields() {
	s.owner.Aadhaar = ""
	s.tenant.Address = ""
	s.expectLookups()

	preview, err := s.service.Preview(s.T().Context(), s.caller, s.tenant.ID)
	s.Require().NoError(err)

	s.False(preview.Owner.HasAadhaar)
	s.False(preview.Tenant.HasAddress)
}

func templateArchive(t *testing.T, text string) []byte {
	t.Helper()
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body><w:p><w:r><w:t>` + text + `</w:t></w:r></w:p></w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
			`</Types>`,
		"word/document.xml": document,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(data))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
