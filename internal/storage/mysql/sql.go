package mysql

const upsertBusinessSQL = `
INSERT INTO businesses
  (kind, id, name, name_en, description, description_en, address, address_en,
   hours, hours_en, specialties, specialties_en, category, price_range, rating,
   featured, lon, lat, flags, tags, phone, website)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name           = VALUES(name),
  name_en        = VALUES(name_en),
  description    = VALUES(description),
  description_en = VALUES(description_en),
  address        = VALUES(address),
  address_en     = VALUES(address_en),
  hours          = VALUES(hours),
  hours_en       = VALUES(hours_en),
  specialties    = VALUES(specialties),
  specialties_en = VALUES(specialties_en),
  category       = VALUES(category),
  price_range    = VALUES(price_range),
  rating         = VALUES(rating),
  featured       = VALUES(featured),
  lon            = VALUES(lon),
  lat            = VALUES(lat),
  flags          = VALUES(flags),
  tags           = VALUES(tags),
  phone          = VALUES(phone),
  website        = VALUES(website),
  updated_at     = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// Column order must match scanBusiness.
const businessColumns = `
  kind, id, name, name_en, description, description_en, address, address_en,
  hours, hours_en, specialties, specialties_en, category, price_range, rating,
  featured, lon, lat, flags, tags, phone, website
`

// Ordered by id so listings are deterministic before the in-memory sort.
const listBusinessesSQL = `SELECT` + businessColumns + `FROM businesses WHERE kind = ? ORDER BY id`

const getBusinessSQL = `SELECT` + businessColumns + `FROM businesses WHERE kind = ? AND id = ?`
