package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/contasys/contasys-backend/internal/apperrors"
	"github.com/contasys/contasys-backend/internal/core/domain"
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	"github.com/contasys/contasys-backend/internal/models"
	"github.com/contasys/contasys-backend/internal/utils/accounting"
	"github.com/contasys/contasys-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates the repository owning the posting transaction.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// PostDocument posts one source document inside a single DB transaction. The
// document row is locked first, so concurrent posts of the same document
// serialize here; every check after the lock sees committed state. The
// correlativo comes from an UPSERT on entry_sequences inside the same
// transaction, so an aborted post rolls the counter back and the committed
// sequence stays gap-free.
func (r *PgxJournalRepository) PostDocument(ctx context.Context, companyID int64, documentUUID string, actorID string) (*domain.PostedDocument, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// 1. Lock the document row for the duration of the transaction.
	docQuery := `
		SELECT uuid, company_id, operation_type, payment_terms, total_amount, work_date,
		       debit_account_id, credit_account_id, description, status, journal_entry_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM source_documents
		WHERE uuid = $1 AND company_id = $2
		FOR UPDATE;
	`
	var modelDoc models.SourceDocument
	err = tx.QueryRow(ctx, docQuery, documentUUID, companyID).Scan(
		&modelDoc.UUID,
		&modelDoc.CompanyID,
		&modelDoc.OperationType,
		&modelDoc.PaymentTerms,
		&modelDoc.TotalAmount,
		&modelDoc.WorkDate,
		&modelDoc.DebitAccountID,
		&modelDoc.CreditAccountID,
		&modelDoc.Description,
		&modelDoc.Status,
		&modelDoc.JournalEntryID,
		&modelDoc.CreatedAt,
		&modelDoc.CreatedBy,
		&modelDoc.LastUpdatedAt,
		&modelDoc.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeDocumentNotFound, fmt.Sprintf("document %s not found", documentUUID))
		}
		return nil, apperrors.NewInternalError("failed to lock document for posting", err)
	}
	doc := mapping.ToDomainDocument(modelDoc)

	// 2. Re-check state under the lock.
	if doc.Posted() {
		return nil, apperrors.NewConflictError(apperrors.CodeAlreadyPosted, fmt.Sprintf("document %s is already posted to entry %d", doc.UUID, *doc.JournalEntryID))
	}
	if doc.Status == domain.DocumentVoided {
		return nil, apperrors.NewConflictError(apperrors.CodeDocumentVoided, fmt.Sprintf("document %s is voided", doc.UUID))
	}

	// 3. The period holding the work date must still be open. Checked inside
	// the transaction so a close committed after the service-level check is
	// still caught.
	year, month := domain.PeriodOf(doc.WorkDate)
	var isClosed bool
	err = tx.QueryRow(ctx, `SELECT is_closed FROM period_locks WHERE company_id = $1 AND year = $2 AND month = $3;`, companyID, year, month).Scan(&isClosed)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewInternalError("failed to check period lock", err)
	}
	if err == nil && isClosed {
		return nil, apperrors.NewConflictError(apperrors.CodePeriodClosed, fmt.Sprintf("period %04d-%02d is closed for company %d", year, month, companyID))
	}

	// 4. Build and validate the balanced lines.
	lines, err := accounting.BuildDocumentLines(doc)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := accounting.ValidateEntryBalance(lines); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, apperrors.CodeUnbalancedEntry, err.Error(), err)
	}

	// 5. Allocate the next correlativo. The UPSERT both seeds the counter on
	// first use and increments it afterwards, all under the row lock the
	// update takes.
	var correlativo int64
	seqQuery := `
		INSERT INTO entry_sequences (company_id, current_val)
		VALUES ($1, 1)
		ON CONFLICT (company_id)
		DO UPDATE SET current_val = entry_sequences.current_val + 1
		RETURNING current_val;
	`
	if err := tx.QueryRow(ctx, seqQuery, companyID).Scan(&correlativo); err != nil {
		return nil, apperrors.NewInternalError("failed to allocate entry sequence", err)
	}

	// 6. Insert the entry.
	now := time.Now()
	bookTypeID := domain.BookTypeFor(doc.OperationType)
	description := doc.Description
	if description == "" {
		description = fmt.Sprintf("Posting of document %s", doc.UUID)
	}
	var entryID int64
	entryQuery := `
		INSERT INTO journal_entries (
			company_id, sequence_number, book_type_id, entry_date, description, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING entry_id;
	`
	err = tx.QueryRow(ctx, entryQuery,
		companyID,
		correlativo,
		bookTypeID,
		doc.WorkDate,
		description,
		string(domain.EntryActive),
		now,
		actorID,
		now,
		actorID,
	).Scan(&entryID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, concurrentConflict(fmt.Sprintf("concurrent posting conflict on company %d sequence %d", companyID, correlativo), err)
		}
		return nil, apperrors.NewInternalError("failed to insert journal entry", err)
	}

	// 7. Insert the lines as one batch.
	lineQuery := `
		INSERT INTO journal_lines (entry_id, account_id, debit_amount, credit_amount, reference)
		VALUES ($1, $2, $3, $4, $5);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(lineQuery, entryID, line.AccountID, line.DebitAmount, line.CreditAmount, line.Reference)
	}
	br := tx.SendBatch(ctx, batch)
	for range lines {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return nil, apperrors.NewInternalError("failed to insert journal lines", err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewInternalError("failed to close journal line batch", err)
	}

	// 8. Stamp the document. Conditioned on journal_entry_id still being
	// NULL so a race that slipped past the lock cannot double-post.
	stampQuery := `
		UPDATE source_documents
		SET journal_entry_id = $1, last_updated_at = $2, last_updated_by = $3
		WHERE uuid = $4 AND company_id = $5 AND journal_entry_id IS NULL;
	`
	cmdTag, err := tx.Exec(ctx, stampQuery, entryID, now, actorID, doc.UUID, companyID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to stamp document with entry id", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.NewConflictError(apperrors.CodeAlreadyPosted, fmt.Sprintf("document %s was posted concurrently", doc.UUID))
	}

	if err := r.Commit(ctx, tx); err != nil {
		if isUniqueViolation(err) {
			return nil, concurrentConflict(fmt.Sprintf("concurrent posting conflict on document %s", doc.UUID), err)
		}
		return nil, err
	}

	return &domain.PostedDocument{
		DocumentUUID:   doc.UUID,
		JournalEntryID: entryID,
		Correlativo:    correlativo,
		EntryDate:      doc.WorkDate,
	}, nil
}

// FindEntryByID returns a journal entry with its lines, scoped by company.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, companyID int64, entryID int64) (*domain.JournalEntry, error) {
	entryQuery := `
		SELECT entry_id, company_id, sequence_number, book_type_id, entry_date, description, status,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE entry_id = $1 AND company_id = $2;
	`
	var modelEntry models.JournalEntry
	err := r.Pool.QueryRow(ctx, entryQuery, entryID, companyID).Scan(
		&modelEntry.EntryID,
		&modelEntry.CompanyID,
		&modelEntry.SequenceNumber,
		&modelEntry.BookTypeID,
		&modelEntry.EntryDate,
		&modelEntry.Description,
		&modelEntry.Status,
		&modelEntry.CreatedAt,
		&modelEntry.CreatedBy,
		&modelEntry.LastUpdatedAt,
		&modelEntry.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeDocumentNotFound, fmt.Sprintf("journal entry %d not found", entryID))
		}
		return nil, apperrors.NewInternalError("failed to find journal entry", err)
	}

	lineQuery := `
		SELECT line_id, entry_id, account_id, debit_amount, credit_amount, reference
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, lineQuery, entryID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query journal lines", err)
	}
	defer rows.Close()

	var modelLines []models.JournalLine
	for rows.Next() {
		var line models.JournalLine
		if err := rows.Scan(&line.LineID, &line.EntryID, &line.AccountID, &line.DebitAmount, &line.CreditAmount, &line.Reference); err != nil {
			return nil, apperrors.NewInternalError("failed to scan journal line", err)
		}
		modelLines = append(modelLines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read journal lines", err)
	}

	entry := mapping.ToDomainEntry(modelEntry)
	entry.Lines = mapping.ToDomainLineSlice(modelLines)
	return &entry, nil
}

// ListEntriesByCompany returns entries in sequence order, without lines.
func (r *PgxJournalRepository) ListEntriesByCompany(ctx context.Context, companyID int64, limit int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT entry_id, company_id, sequence_number, book_type_id, entry_date, description, status,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE company_id = $1
		ORDER BY sequence_number DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query journal entries", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(
			&m.EntryID, &m.CompanyID, &m.SequenceNumber, &m.BookTypeID, &m.EntryDate,
			&m.Description, &m.Status, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan journal entry", err)
		}
		entries = append(entries, mapping.ToDomainEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read journal entries", err)
	}
	return entries, nil
}
