package store

const (
	createUser = `INSERT INTO users (name, email, password_hash, account_type, phone_number)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, created_at;`

	createCompany = `INSERT INTO companies (user_id, company_name, cnpj)
    VALUES ($1, $2, $3);`

	findUserByEmail = `SELECT id, name, email, password_hash, account_type, phone_number, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, name, email, password_hash, account_type, phone_number, created_at
    FROM users
    WHERE id = $1;`

	findCompanyByUserID = `SELECT user_id, company_name, cnpj
    FROM companies
    WHERE user_id = $1;`

	updatePassword = `UPDATE users
    SET password_hash = $1
    WHERE email = $2;`

	listCompanies = `SELECT u.id, u.name, u.email, u.phone_number, c.company_name, c.cnpj
    FROM companies c
    JOIN users u ON u.id = c.user_id
    ORDER BY u.id;`

	createVehicle = `INSERT INTO vehicles (seller_id, seller_type, mark, model, year, mileage, price, fuel_type, color, status, availability, description)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    RETURNING id, created_at;`

	// selectVehicleForUpdate acquires a row-level write lock so that
	// concurrent checkout attempts on the same vehicle serialize against
	// each other until the transaction ends.
	selectVehicleForUpdate = `SELECT availability, price
    FROM vehicles
    WHERE id = $1
    FOR UPDATE;`

	createSale = `INSERT INTO sells (client_id, vehicle_id, total_value, purchase_status)
    VALUES ($1, $2, $3, $4)
    RETURNING id, created_at;`

	markVehicleSold = `UPDATE vehicles
    SET availability = $1
    WHERE id = $2;`

	saveAdvisoryLog = `INSERT INTO llm_register (user_id, prompt_used, llm_answer, llm_model)
    VALUES ($1, $2, $3, $4);`
)
