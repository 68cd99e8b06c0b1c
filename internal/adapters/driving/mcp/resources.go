package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docfind/internal/core/domain"
)

const (
	uriScheme       = "docs://"
	documentsURI    = uriScheme + "documents"
	documentPrefix  = documentsURI + "/"
	jsonContentType = "application/json"
)

// documentInfo is the JSON form of a document in resources.
type documentInfo struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Path        string   `json:"path"`
	Section     string   `json:"section,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

func newDocumentInfo(doc *domain.Document) documentInfo {
	return documentInfo{
		ID:          doc.ID,
		Title:       doc.Title,
		Description: doc.Description,
		Path:        doc.Path,
		Section:     doc.Section.Label(),
		Keywords:    doc.Keywords,
	}
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         documentsURI,
		Name:        "documents",
		Description: "Every documentation topic in corpus order",
		MIMEType:    jsonContentType,
	}, s.handleDocumentsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: documentPrefix + "{documentId}",
		Name:        "document",
		Description: "A single documentation topic",
		MIMEType:    jsonContentType,
	}, s.handleDocumentResource)
}

// handleDocumentsResource lists the corpus.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Corpus == nil {
		return jsonResult(req.Params.URI, "[]"), nil
	}

	docs, err := s.ports.Corpus.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	infos := make([]documentInfo, len(docs))
	for i := range docs {
		infos[i] = newDocumentInfo(&docs[i])
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling documents: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

// handleDocumentResource returns one document by ID.
func (s *Server) handleDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Corpus == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	id := extractDocumentID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Corpus.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}

	data, err := json.MarshalIndent(newDocumentInfo(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling document: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

func jsonResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: jsonContentType,
			Text:     text,
		}},
	}
}

// extractDocumentID extracts the document ID from a URI like docs://documents/{documentId}.
func extractDocumentID(uri string) string {
	if !strings.HasPrefix(uri, documentPrefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, documentPrefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
