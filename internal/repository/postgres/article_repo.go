package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/news-portal-api/internal/database"
	"github.com/news-portal-api/internal/models"
	"github.com/news-portal-api/internal/repository"
)

const articleColumns = `id, title, slug, excerpt, content, image_url, author, category_id, tags,
	is_featured, is_breaking_news, is_viral, view_count, comment_count, share_count, published_at, created_at`

// articleRepo is the postgres implementation of ArticleRepository
type articleRepo struct {
	db      *database.DB
	weights repository.PopularityWeights
}

func (r *articleRepo) List(ctx context.Context, limit, offset int) ([]*models.Article, error) {
	if err := checkPage(limit, offset); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM articles ORDER BY published_at DESC, id DESC %s`,
		articleColumns, limitOffsetClause(limit, offset))
	return r.queryArticles(ctx, query)
}

func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM articles WHERE id = $1`, articleColumns)
	return r.queryArticle(ctx, query, id)
}

func (r *articleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM articles WHERE slug = $1`, articleColumns)
	return r.queryArticle(ctx, query, slug)
}

func (r *articleRepo) ListByCategory(ctx context.Context, slugOrID string, limit, offset int) ([]*models.Article, error) {
	if err := checkPage(limit, offset); err != nil {
		return nil, err
	}

	var categoryID int
	var err error
	if id, convErr := strconv.Atoi(slugOrID); convErr == nil {
		categoryID = id
	} else {
		err = r.db.QueryRowContext(ctx, `SELECT id FROM categories WHERE slug = $1`, slugOrID).Scan(&categoryID)
		if err == sql.ErrNoRows {
			// Unknown categories degrade to an empty list, never an error
			return []*models.Article{}, nil
		}
		if err != nil {
			return nil, err
		}
	}

	query := fmt.Sprintf(`SELECT %s FROM articles WHERE category_id = $1 ORDER BY published_at DESC, id DESC %s`,
		articleColumns, limitOffsetClause(limit, offset))
	return r.queryArticles(ctx, query, categoryID)
}

func (r *articleRepo) ListFeatured(ctx context.Context, limit int) ([]*models.Article, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM articles WHERE is_featured ORDER BY published_at DESC, id DESC %s`,
		articleColumns, limitClause(limit))
	return r.queryArticles(ctx, query)
}

func (r *articleRepo) ListPopular(ctx context.Context, limit int) ([]*models.Article, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM articles ORDER BY %s DESC, published_at DESC %s`,
		articleColumns, r.scoreExpr(), limitClause(limit))
	return r.queryArticles(ctx, query)
}

func (r *articleRepo) ListViral(ctx context.Context, limit int) ([]*models.Article, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM articles WHERE is_viral ORDER BY %s DESC, published_at DESC %s`,
		articleColumns, r.scoreExpr(), limitClause(limit))
	return r.queryArticles(ctx, query)
}

func (r *articleRepo) Search(ctx context.Context, query string, limit int) ([]*models.Article, error) {
	if err := checkPage(limit, 0); err != nil {
		return nil, err
	}
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil, repository.ErrInvalidArgument
	}

	// One ILIKE disjunct per term over title, excerpt, content and tags
	conditions := make([]string, 0, len(terms))
	args := make([]interface{}, 0, len(terms))
	for i, term := range terms {
		p := fmt.Sprintf("$%d", i+1)
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE %s OR excerpt ILIKE %s OR content ILIKE %s OR tags::text ILIKE %s)", p, p, p, p))
		args = append(args, "%"+term+"%")
	}

	sqlQuery := fmt.Sprintf(`SELECT %s FROM articles WHERE %s ORDER BY published_at DESC, id DESC %s`,
		articleColumns, strings.Join(conditions, " OR "), limitClause(limit))
	return r.queryArticles(ctx, sqlQuery, args...)
}

// Create inserts the article and bumps the category counter in one
// transaction. A missing category rolls the whole operation back.
func (r *articleRepo) Create(ctx context.Context, input *models.ArticleInput) (*models.Article, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, input.CategoryID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, repository.ErrNotFound
	}

	tagsJSON, _ := json.Marshal(input.Tags)
	if input.Tags == nil {
		tagsJSON = []byte("[]")
	}

	article := &models.Article{
		Title:       input.Title,
		Slug:        input.Slug,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		ImageURL:    input.ImageURL,
		Author:      input.Author,
		CategoryID:  input.CategoryID,
		Tags:        append([]string(nil), input.Tags...),
		IsFeatured:  input.IsFeatured,
		IsBreaking:  input.IsBreaking,
		IsViral:     input.IsViral,
		PublishedAt: input.PublishedAt,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO articles (title, slug, excerpt, content, image_url, author, category_id, tags,
			is_featured, is_breaking_news, is_viral, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`,
		input.Title, input.Slug, input.Excerpt, input.Content, input.ImageURL, input.Author,
		input.CategoryID, tagsJSON, input.IsFeatured, input.IsBreaking, input.IsViral, input.PublishedAt,
	).Scan(&article.ID, &article.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE categories SET article_count = article_count + 1 WHERE id = $1`, input.CategoryID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return article, nil
}

func (r *articleRepo) IncrementViewCount(ctx context.Context, id int) (*models.Article, error) {
	query := fmt.Sprintf(`
		UPDATE articles SET view_count = view_count + 1 WHERE id = $1
		RETURNING %s`, articleColumns)
	return r.queryArticle(ctx, query, id)
}

func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&count)
	return count, err
}

// scoreExpr renders the configured popularity score as a SQL expression
func (r *articleRepo) scoreExpr() string {
	return fmt.Sprintf("(%f * view_count + %f * comment_count + %f * share_count)",
		r.weights.View, r.weights.Comment, r.weights.Share)
}

func (r *articleRepo) queryArticle(ctx context.Context, query string, args ...interface{}) (*models.Article, error) {
	row := r.db.QueryRowContext(ctx, query, args...)
	article, err := scanArticle(row)
	if err != nil {
		return nil, mapError(err)
	}
	return article, nil
}

func (r *articleRepo) queryArticles(ctx context.Context, query string, args ...interface{}) ([]*models.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []*models.Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// scanTarget is satisfied by both *sql.Row and *sql.Rows
type scanTarget interface {
	Scan(dest ...interface{}) error
}

func scanArticle(row scanTarget) (*models.Article, error) {
	var article models.Article
	var tagsJSON []byte

	err := row.Scan(
		&article.ID, &article.Title, &article.Slug, &article.Excerpt, &article.Content,
		&article.ImageURL, &article.Author, &article.CategoryID, &tagsJSON,
		&article.IsFeatured, &article.IsBreaking, &article.IsViral,
		&article.ViewCount, &article.CommentCount, &article.ShareCount,
		&article.PublishedAt, &article.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	json.Unmarshal(tagsJSON, &article.Tags)
	return &article, nil
}

// limitClause renders a LIMIT clause; limit 0 means no cap
func limitClause(limit int) string {
	if limit <= 0 {
		return ""
	}
	return fmt.Sprintf("LIMIT %d", limit)
}

func limitOffsetClause(limit, offset int) string {
	clause := limitClause(limit)
	if offset > 0 {
		clause += fmt.Sprintf(" OFFSET %d", offset)
	}
	return strings.TrimSpace(clause)
}
