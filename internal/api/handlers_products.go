package api

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/conectone/platform/internal/storage"
	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/csvutil"
	"github.com/conectone/platform/pkg/result"
	"github.com/conectone/platform/pkg/xlsxutil"
)

// productColumns is the shared column set for product exports in both
// formats. Import consumes the same headers.
func productColumns() []csvutil.Column[*models.Product] {
	return []csvutil.Column[*models.Product]{
		{Header: "sku", Value: func(p *models.Product) string { return p.SKU }},
		{Header: "name", Value: func(p *models.Product) string { return p.Name }},
		{Header: "description", Value: func(p *models.Product) string { return p.Description }},
		{Header: "category", Value: func(p *models.Product) string {
			if p.Category != nil {
				return p.Category.Slug
			}
			return ""
		}},
		{Header: "price", Value: func(p *models.Product) string { return strconv.FormatInt(p.Price, 10) }},
		{Header: "currency", Value: func(p *models.Product) string { return p.Currency }},
		{Header: "stock", Value: func(p *models.Product) string { return strconv.Itoa(p.Stock) }},
		{Header: "status", Value: func(p *models.Product) string { return p.Status }},
	}
}

// listCategories handles GET /api/v1/categories
// @Summary List categories
// @Description List the tenant's product categories in name order
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} result.Result[[]models.Category] "Categories"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /categories [get]
func (s *Server) listCategories(c echo.Context) error {
	cats, err := s.storage.ListCategories(c.Request().Context(), s.authMiddle.Tenant(c))
	if err != nil {
		return InternalError("Failed to list categories", err.Error())
	}
	return c.JSON(http.StatusOK, result.Ok(cats))
}

// createCategory handles POST /api/v1/categories
// @Summary Create category
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body models.Category true "Category"
// @Success 201 {object} result.Result[models.Category] "Created category"
// @Failure 400 {object} APIError "Bad request or validation errors"
// @Failure 409 {object} APIError "Duplicate slug"
// @Router /categories [post]
func (s *Server) createCategory(c echo.Context) error {
	var cat models.Category
	if err := c.Bind(&cat); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	cat.ID = models.GenerateID("category")
	cat.TenantID = s.authMiddle.Tenant(c)
	now := time.Now()
	cat.CreatedAt = now
	cat.UpdatedAt = now

	if res := s.validator.Validate(&cat); !res.Valid {
		return ValidationFailedError("Category validation failed", fieldErrorMap(res))
	}

	ctx := c.Request().Context()
	if cat.ParentID != nil {
		if _, err := s.storage.GetCategory(ctx, cat.TenantID, *cat.ParentID); err != nil {
			return storageError(err, "Category", *cat.ParentID)
		}
	}

	if err := s.storage.CreateCategory(ctx, &cat); err != nil {
		return storageError(err, "Category", cat.ID)
	}

	s.broadcast(cat.TenantID, "category", EventCreated, &cat)
	return c.JSON(http.StatusCreated, result.Ok(&cat))
}

// updateCategory handles PUT /api/v1/categories/:id
// @Summary Update category
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param category body models.Category true "Category"
// @Success 200 {object} result.Result[models.Category] "Updated category"
// @Failure 400 {object} APIError "Bad request"
// @Failure 404 {object} APIError "Not found"
// @Router /categories/{id} [put]
func (s *Server) updateCategory(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	tenant := s.authMiddle.Tenant(c)

	existing, err := s.storage.GetCategory(ctx, tenant, id)
	if err != nil {
		return storageError(err, "Category", id)
	}

	var cat models.Category
	if err := c.Bind(&cat); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	cat.ID = existing.ID
	cat.TenantID = existing.TenantID
	cat.Slug = existing.Slug
	cat.CreatedAt = existing.CreatedAt

	// A category cannot be its own parent
	if cat.ParentID != nil && *cat.ParentID == cat.ID {
		return BadRequestError("Invalid parent", "category cannot be its own parent")
	}

	if res := s.validator.Validate(&cat); !res.Valid {
		return ValidationFailedError("Category validation failed", fieldErrorMap(res))
	}

	if err := s.storage.UpdateCategory(ctx, &cat); err != nil {
		return storageError(err, "Category", id)
	}

	s.broadcast(tenant, "category", EventUpdated, &cat)
	return c.JSON(http.StatusOK, result.Ok(&cat))
}

// deleteCategory handles DELETE /api/v1/categories/:id
// @Summary Delete category
// @Description Delete a category; fails when products or child categories reference it
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} MessageResponse "Deleted"
// @Failure 404 {object} APIError "Not found"
// @Failure 409 {object} APIError "Category is in use"
// @Router /categories/{id} [delete]
func (s *Server) deleteCategory(c echo.Context) error {
	id := c.Param("id")
	tenant := s.authMiddle.Tenant(c)

	if err := s.storage.DeleteCategory(c.Request().Context(), tenant, id); err != nil {
		return storageError(err, "Category", id)
	}

	s.broadcast(tenant, "category", EventDeleted, map[string]string{"id": id})
	return c.JSON(http.StatusOK, MessageResponse{Message: "category deleted", ID: id})
}

// listProducts handles GET /api/v1/products
// @Summary List products
// @Description Page through the tenant's products, name order, categories loaded
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Param category_id query string false "Filter by category"
// @Param status query string false "Filter by status"
// @Param search query string false "Search name, SKU and description"
// @Success 200 {object} result.PaginatedResult[models.Product] "Page of products"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /products [get]
func (s *Server) listProducts(c echo.Context) error {
	filter := storage.ProductFilter{
		CategoryID: c.QueryParam("category_id"),
		Status:     c.QueryParam("status"),
	}
	page, err := s.storage.PageProducts(c.Request().Context(), s.authMiddle.Tenant(c), filter, parseParams(c))
	if err != nil {
		return InternalError("Failed to list products", err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// getProduct handles GET /api/v1/products/:id
// @Summary Get product
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} result.Result[models.Product] "Product"
// @Failure 404 {object} APIError "Not found"
// @Router /products/{id} [get]
func (s *Server) getProduct(c echo.Context) error {
	id := c.Param("id")
	p, err := s.storage.GetProduct(c.Request().Context(), s.authMiddle.Tenant(c), id)
	if err != nil {
		return storageError(err, "Product", id)
	}
	return c.JSON(http.StatusOK, result.Ok(p))
}

// createProduct handles POST /api/v1/products
// @Summary Create product
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.Product true "Product"
// @Success 201 {object} result.Result[models.Product] "Created product"
// @Failure 400 {object} APIError "Bad request or validation errors"
// @Failure 409 {object} APIError "Duplicate SKU"
// @Router /products [post]
func (s *Server) createProduct(c echo.Context) error {
	var p models.Product
	if err := c.Bind(&p); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	p.ID = models.GenerateID("product")
	p.TenantID = s.authMiddle.Tenant(c)
	p.Category = nil
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if res := s.validator.Validate(&p); !res.Valid {
		return ValidationFailedError("Product validation failed", fieldErrorMap(res))
	}

	ctx := c.Request().Context()
	if p.CategoryID != "" {
		if _, err := s.storage.GetCategory(ctx, p.TenantID, p.CategoryID); err != nil {
			return storageError(err, "Category", p.CategoryID)
		}
	}

	if err := s.storage.CreateProduct(ctx, &p); err != nil {
		return storageError(err, "Product", p.SKU)
	}

	s.broadcast(p.TenantID, "product", EventCreated, &p)
	return c.JSON(http.StatusCreated, result.Ok(&p))
}

// updateProduct handles PUT /api/v1/products/:id
// @Summary Update product
// @Description Update a product; the SKU is immutable
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body models.Product true "Product"
// @Success 200 {object} result.Result[models.Product] "Updated product"
// @Failure 400 {object} APIError "Bad request"
// @Failure 404 {object} APIError "Not found"
// @Router /products/{id} [put]
func (s *Server) updateProduct(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	tenant := s.authMiddle.Tenant(c)

	existing, err := s.storage.GetProduct(ctx, tenant, id)
	if err != nil {
		return storageError(err, "Product", id)
	}

	var p models.Product
	if err := c.Bind(&p); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	p.ID = existing.ID
	p.TenantID = existing.TenantID
	p.SKU = existing.SKU
	p.CreatedAt = existing.CreatedAt
	p.Category = nil

	if res := s.validator.Validate(&p); !res.Valid {
		return ValidationFailedError("Product validation failed", fieldErrorMap(res))
	}

	if p.CategoryID != "" && p.CategoryID != existing.CategoryID {
		if _, err := s.storage.GetCategory(ctx, tenant, p.CategoryID); err != nil {
			return storageError(err, "Category", p.CategoryID)
		}
	}

	if err := s.storage.UpdateProduct(ctx, &p); err != nil {
		return storageError(err, "Product", id)
	}

	s.broadcast(tenant, "product", EventUpdated, &p)
	return c.JSON(http.StatusOK, result.Ok(&p))
}

// deleteProduct handles DELETE /api/v1/products/:id
// @Summary Delete product
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} MessageResponse "Deleted"
// @Failure 404 {object} APIError "Not found"
// @Router /products/{id} [delete]
func (s *Server) deleteProduct(c echo.Context) error {
	id := c.Param("id")
	tenant := s.authMiddle.Tenant(c)

	if err := s.storage.DeleteProduct(c.Request().Context(), tenant, id); err != nil {
		return storageError(err, "Product", id)
	}

	s.broadcast(tenant, "product", EventDeleted, map[string]string{"id": id})
	return c.JSON(http.StatusOK, MessageResponse{Message: "product deleted", ID: id})
}

// exportProductsCSV handles GET /api/v1/products/export.csv
// @Summary Export products as CSV
// @Description Download the tenant's full catalog as a CSV file
// @Tags Catalog
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV payload"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /products/export.csv [get]
func (s *Server) exportProductsCSV(c echo.Context) error {
	products, err := s.storage.ListProducts(c.Request().Context(), s.authMiddle.Tenant(c))
	if err != nil {
		return InternalError("Failed to export products", err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	w := csvutil.NewWriter(c.Response(), productColumns())
	return w.WriteAll(products)
}

// exportProductsExcel handles GET /api/v1/products/export.xlsx
// @Summary Export products as Excel
// @Description Download the tenant's full catalog as an .xlsx workbook
// @Tags Catalog
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {string} string "Workbook payload"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /products/export.xlsx [get]
func (s *Server) exportProductsExcel(c echo.Context) error {
	products, err := s.storage.ListProducts(c.Request().Context(), s.authMiddle.Tenant(c))
	if err != nil {
		return InternalError("Failed to export products", err.Error())
	}

	columns := productColumns()
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	rows := make([][]string, len(products))
	for i, p := range products {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = col.Value(p)
		}
		rows[i] = row
	}

	c.Response().Header().Set(echo.HeaderContentType, xlsxutil.ContentType)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.xlsx"`)
	c.Response().WriteHeader(http.StatusOK)

	return xlsxutil.Export(c.Response(), "Products", headers, rows)
}

// importProducts handles POST /api/v1/products/import
// @Summary Import products
// @Description Bulk-import products from an uploaded CSV or .xlsx file, upserting by SKU. Rows with problems are skipped and reported.
// @Tags Catalog
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV or .xlsx file with sku,name,description,category,price,currency,stock,status columns"
// @Success 200 {object} ImportResponse "Import summary"
// @Failure 400 {object} APIError "Bad request"
// @Router /products/import [post]
func (s *Server) importProducts(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return BadRequestError("Missing file", "multipart field 'file' is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return BadRequestError("Cannot read file", err.Error())
	}
	defer f.Close()

	var headers []string
	var rows [][]string
	if strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
		headers, rows, err = xlsxutil.Import(f)
		if err != nil {
			return BadRequestError("Invalid workbook", err.Error())
		}
	} else {
		headers, rows, err = readCSV(f)
		if err != nil {
			return BadRequestError("Invalid CSV", err.Error())
		}
	}
	if len(headers) == 0 {
		return BadRequestError("Empty file", "no header row found")
	}

	col := make(map[string]int, len(headers))
	for i, h := range headers {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := col["sku"]; !ok {
		return BadRequestError("Invalid file", "missing required column: sku")
	}

	ctx := c.Request().Context()
	tenant := s.authMiddle.Tenant(c)

	// Category slugs in the file map to existing categories
	cats, err := s.storage.ListCategories(ctx, tenant)
	if err != nil {
		return InternalError("Failed to load categories", err.Error())
	}
	catBySlug := make(map[string]string, len(cats))
	for _, cat := range cats {
		catBySlug[cat.Slug] = cat.ID
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	resp := ImportResponse{Errors: []string{}}
	var batch []*models.Product
	now := time.Now()
	for n, row := range rows {
		line := n + 2 // 1-based, after the header

		sku := cell(row, "sku")
		name := cell(row, "name")
		if sku == "" || name == "" {
			resp.Skipped++
			resp.Errors = append(resp.Errors, fmt.Sprintf("row %d: sku and name are required", line))
			continue
		}

		price, err := strconv.ParseInt(cell(row, "price"), 10, 64)
		if err != nil || price < 0 {
			resp.Skipped++
			resp.Errors = append(resp.Errors, fmt.Sprintf("row %d: invalid price", line))
			continue
		}
		stock := 0
		if v := cell(row, "stock"); v != "" {
			stock, err = strconv.Atoi(v)
			if err != nil || stock < 0 {
				resp.Skipped++
				resp.Errors = append(resp.Errors, fmt.Sprintf("row %d: invalid stock", line))
				continue
			}
		}

		currency := strings.ToUpper(cell(row, "currency"))
		if currency == "" {
			currency = "ZAR"
		}
		if len(currency) != 3 {
			resp.Skipped++
			resp.Errors = append(resp.Errors, fmt.Sprintf("row %d: invalid currency", line))
			continue
		}

		categoryID := ""
		if slug := cell(row, "category"); slug != "" {
			id, ok := catBySlug[slug]
			if !ok {
				resp.Skipped++
				resp.Errors = append(resp.Errors, fmt.Sprintf("row %d: unknown category %q", line, slug))
				continue
			}
			categoryID = id
		}

		status := cell(row, "status")
		if status == "" {
			status = models.ProductStatusActive
		}

		batch = append(batch, &models.Product{
			ID:          models.GenerateID("product"),
			TenantID:    tenant,
			CategoryID:  categoryID,
			SKU:         sku,
			Name:        name,
			Description: cell(row, "description"),
			Price:       price,
			Currency:    currency,
			Stock:       stock,
			Status:      status,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if len(batch) > 0 {
		if err := s.storage.UpsertProductsBySKU(ctx, batch...); err != nil {
			return InternalError("Failed to import products", err.Error())
		}
		resp.Imported = len(batch)
		s.broadcast(tenant, "product", EventUpdated, map[string]int{"imported": resp.Imported})
	}

	return c.JSON(http.StatusOK, resp)
}

// readCSV returns a CSV file's header row and data rows, padding short rows
// to the header width.
func readCSV(r io.Reader) (headers []string, rows [][]string, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	all, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	headers = all[0]
	for _, row := range all[1:] {
		for len(row) < len(headers) {
			row = append(row, "")
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}
