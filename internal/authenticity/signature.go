package authenticity

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"hiredocs/internal/entity"
)

// Producer/creator substrings left behind by known e-signature tools.
var signatureTools = []string{
	"adobe acrobat", "docusign", "adobe sign", "hellosign",
	"pandadoc", "signrequest", "eversign", "signnow",
}

// DetectSignatures inspects the PDF metadata for e-signature tool traces and
// security-relevant structure. The report is best-effort: a broken file sets
// Error and leaves the zero values in place.
func (c *Checker) DetectSignatures(path string) entity.SignatureInfo {
	var info entity.SignatureInfo

	f, err := os.Open(path)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pi, err := api.PDFInfo(f, path, nil, conf)
	if err != nil {
		info.Error = fmt.Sprintf("read pdf info: %v", err)
		c.logger.Warn("digital signature detection failed", "path", path, "error", err)
		return info
	}

	info.Metadata = entity.DocMetadata{
		Creator:          pi.Creator,
		Producer:         pi.Producer,
		Subject:          pi.Subject,
		Author:           pi.Author,
		CreationDate:     pi.CreationDate,
		ModificationDate: pi.ModificationDate,
	}
	info.Encrypted = pi.Encrypted

	producer := strings.ToLower(pi.Producer)
	creator := strings.ToLower(pi.Creator)
	for _, tool := range signatureTools {
		if strings.Contains(producer, tool) || strings.Contains(creator, tool) {
			info.HasDigitalSignature = true
			info.SecurityFeatures = append(info.SecurityFeatures, "Signed with "+tool)
		}
	}

	// interactive form fields usually host signature widgets
	if pi.Form {
		info.SecurityFeatures = append(info.SecurityFeatures, "Contains form annotations")
	}

	c.logger.Debug("digital signature analysis completed",
		"path", path, "features", len(info.SecurityFeatures), "encrypted", info.Encrypted)
	return info
}
